package http

import (
	"net/http"

	"github.com/llmarena/backend/httpjson"
	"github.com/llmarena/backend/modellist"
)

func (httpserver *HttpServer) listModels(w http.ResponseWriter, r *http.Request) {
	type modelView struct {
		ID       string `json:"id"`
		Display  string `json:"display"`
		Provider string `json:"provider"`
	}

	models := modellist.ListModels()
	views := make([]modelView, len(models))
	for i, m := range models {
		views[i] = modelView{ID: m.ID, Display: m.Display, Provider: m.Provider}
	}
	httpjson.WriteSuccessJson(w, views)
}
