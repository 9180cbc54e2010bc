package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/infrastructure/storage"
	"TumorNetViz/internal/infrastructure/tabular"
	"TumorNetViz/internal/logging"
	"TumorNetViz/internal/ports"
	"TumorNetViz/internal/render"
	"TumorNetViz/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	db       *sql.DB
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := render.NewRegistry()
	registry.Register(render.NewNetworkLayout())
	registry.Register(render.NewTreeLayout())

	renderers := make([]ports.PageRenderer, 0, len(cfg.Variants))
	for _, variant := range cfg.Variants {
		layout, err := registry.Resolve(variant.Layout)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", variant.Name, err)
		}
		renderers = append(renderers, render.NewPage(
			variant,
			layout,
			cfg.Filter.MinScore,
			baseLogger.With("component", "render."+variant.Name),
		))
	}

	source := tabular.NewCSVSource(cfg.Data, cfg.Filter.MinScore, baseLogger.With("component", "loader"))

	var (
		repository ports.SummaryRepository
		db         *sql.DB
	)
	if cfg.Database.DSN != "" {
		var err error
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			baseLogger.Warn("run summaries disabled", "error", err)
		} else {
			repository = storage.NewPostgresRepository(db)
		}
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Renderers:  renderers,
		Repository: repository,
		Filter:     cfg.Filter,
		OutputDir:  cfg.Output.Dir,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline, db: db}, nil
}

// Run performs a single batch execution.
func (a *Application) Run(ctx context.Context) error {
	if a.db != nil {
		defer a.db.Close()
	}

	if a.pipeline == nil {
		return nil
	}

	_, err := a.pipeline.Run(ctx)
	return err
}
