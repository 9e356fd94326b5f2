package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/llmarena/backend/comp"
	"github.com/llmarena/backend/conf"
	"github.com/llmarena/backend/http"
	"github.com/llmarena/backend/judge"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	config, err := conf.Read()
	if err != nil {
		slog.Error("failed to read configuration", "error", err)
		os.Exit(1)
	}

	judgeClnt := judge.NewHttpClient(config.JudgeBaseUrl)
	compSrvc := comp.NewCompSrvc(judgeClnt, clockwork.NewRealClock(), comp.Options{
		Duration:    config.CompDuration,
		TurnTimeout: config.TurnTimeout,
		FeedCap:     config.FeedCap,
	})
	defer compSrvc.Close()

	httpServer := http.NewHttpServer(compSrvc, judgeClnt)

	log.Printf("Starting server on %s", config.ListenAddr)
	err = httpServer.Start(config.ListenAddr)
	log.Printf("Server stopped with error: %v", err)
}
