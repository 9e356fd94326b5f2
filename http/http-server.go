package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/llmarena/backend/comp"
	"github.com/llmarena/backend/judge"
)

type HttpServer struct {
	compSrvc  *comp.CompSrvc
	judgeClnt judge.Client
	router    *chi.Mux
}

func NewHttpServer(
	compSrvc *comp.CompSrvc,
	judgeClnt judge.Client,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("llmarena", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": "v0.3",
			"env":     "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	server := &HttpServer{
		compSrvc:  compSrvc,
		judgeClnt: judgeClnt,
		router:    router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/competitions", httpserver.createComp)
	r.Get("/competitions/{compId}", httpserver.getComp)
	r.Get("/competitions/{compId}/submissions", httpserver.listSubms)
	r.Get("/competitions/{compId}/listen", httpserver.listenToFeedUpdates)
	r.Get("/models", httpserver.listModels)
}
