package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/llmarena/backend/comp"
	"github.com/llmarena/backend/httpjson"
	"github.com/llmarena/backend/logger"
)

func (httpserver *HttpServer) parseCompID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	compID, err := uuid.Parse(chi.URLParam(r, "compId"))
	if err != nil {
		httpjson.HandleError(slog.Default(), w, comp.ErrCompNotFound().SetDebug(err))
		return uuid.Nil, false
	}
	return compID, true
}

func (httpserver *HttpServer) getComp(w http.ResponseWriter, r *http.Request) {
	compID, ok := httpserver.parseCompID(w, r)
	if !ok {
		return
	}
	ctx := logger.WithCompID(r.Context(), compID.String())

	view, err := httpserver.compSrvc.GetComp(ctx, compID)
	if err != nil {
		httpjson.HandleError(logger.FromContext(ctx), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapComp(view))
}
