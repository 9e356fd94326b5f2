package http

import (
	"net/http"

	"github.com/llmarena/backend/httpjson"
	"github.com/llmarena/backend/logger"
)

func (httpserver *HttpServer) listSubms(w http.ResponseWriter, r *http.Request) {
	compID, ok := httpserver.parseCompID(w, r)
	if !ok {
		return
	}
	ctx := logger.WithCompID(r.Context(), compID.String())

	subms, err := httpserver.compSrvc.ListSubms(ctx, compID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(ctx), w, err)
		return
	}

	views := make([]SubmView, len(subms))
	for i, subm := range subms {
		views[i] = mapSubm(subm)
	}
	httpjson.WriteSuccessJson(w, views)
}
