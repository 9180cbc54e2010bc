package main

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/infrastructure/storage"
	"TumorNetViz/internal/infrastructure/webview"
	"TumorNetViz/internal/logging"
	"TumorNetViz/internal/ports"
	"TumorNetViz/pkg/logger"
)

func main() {
	cfg := config.Load()
	slogger := logging.New(cfg.Logging.Level)
	startup := logger.New("netviewer")

	var repository ports.SummaryRepository
	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			slogger.Warn("run history unavailable", "error", err)
		} else {
			defer db.Close()
			repository = storage.NewPostgresRepository(db)
		}
	}

	server := webview.New(cfg.Viewer, cfg.Output.Dir, repository, slogger.With("component", "webview"))

	startup.Printf("serving %s on %s", cfg.Output.Dir, cfg.Viewer.Addr)
	if err := server.Run(); err != nil {
		slogger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
