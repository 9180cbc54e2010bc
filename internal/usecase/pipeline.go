package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"TumorNetViz/internal/aggregate"
	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
	"TumorNetViz/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.TableSource
	Renderers  []ports.PageRenderer
	Repository ports.SummaryRepository
	Filter     config.FilterConfig
	OutputDir  string
	Logger     *slog.Logger
}

// Pipeline implements the load, aggregate, render, report workflow.
type Pipeline struct {
	source     ports.TableSource
	renderers  []ports.PageRenderer
	repository ports.SummaryRepository
	filter     config.FilterConfig
	outputDir  string
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		renderers:  deps.Renderers,
		repository: deps.Repository,
		filter:     deps.Filter,
		outputDir:  deps.OutputDir,
		logger:     deps.Logger,
	}
}

// Run executes one batch: load every category table, aggregate the
// membership, render each configured variant, and emit the run report.
func (p *Pipeline) Run(ctx context.Context) (domain.RunReport, error) {
	if p.source == nil {
		return domain.RunReport{}, nil
	}

	started := time.Now()

	tables, err := p.source.Load(ctx)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("load tables: %w", err)
	}

	membership := aggregate.Aggregate(tables, p.filter.MaxEntitiesPerCategory)
	report := p.buildReport(tables, membership)

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return domain.RunReport{}, fmt.Errorf("create output dir: %w", err)
	}

	for _, renderer := range p.renderers {
		page, err := renderer.Render(membership, tables)
		if err != nil {
			return domain.RunReport{}, fmt.Errorf("render %s: %w", renderer.Name(), err)
		}

		path := filepath.Join(p.outputDir, renderer.Name()+".html")
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return domain.RunReport{}, fmt.Errorf("write %s: %w", path, err)
		}

		report.Outputs = append(report.Outputs, path)
	}

	if err := p.writeReportFile(report); err != nil {
		return domain.RunReport{}, err
	}

	if p.repository != nil {
		if err := p.repository.SaveReport(ctx, report); err != nil {
			// outputs are already on disk; a summary-store failure is not fatal
			p.warn("persist run report", "error", err)
		}
	}

	p.logReport(report, time.Since(started))
	return report, nil
}

func (p *Pipeline) buildReport(tables map[string]domain.CategoryTable, membership domain.Membership) domain.RunReport {
	report := domain.RunReport{GeneratedAt: time.Now().UTC()}

	specific, cross := aggregate.Counts(membership)
	report.TotalEntities = len(membership)
	report.SpecificEntities = specific
	report.CrossEntities = cross

	perCategory := make(map[string]*domain.CategorySummary, len(tables))
	for _, category := range aggregate.SortedCategories(tables) {
		perCategory[category] = &domain.CategorySummary{
			Category: category,
			Loaded:   tables[category].Loaded,
			Kept:     len(tables[category].Rows),
		}
	}

	for entity, scores := range membership {
		classification := aggregate.Classify(membership, entity)
		for category := range scores {
			summary, ok := perCategory[category]
			if !ok {
				continue
			}
			if classification == domain.CrossCategory {
				summary.Cross++
			} else {
				summary.Specific++
			}
		}
	}

	for _, category := range aggregate.SortedCategories(tables) {
		report.Categories = append(report.Categories, *perCategory[category])
	}

	return report
}

// writeReportFile leaves the summary next to the rendered pages so the
// viewer can serve it without a database.
func (p *Pipeline) writeReportFile(report domain.RunReport) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := filepath.Join(p.outputDir, "report.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (p *Pipeline) logReport(report domain.RunReport, elapsed time.Duration) {
	if p.logger == nil {
		return
	}

	for _, cat := range report.Categories {
		p.logger.Info("category summary",
			"category", cat.Category,
			"loaded", cat.Loaded,
			"kept", cat.Kept,
			"specific", cat.Specific,
			"cross", cat.Cross)
	}

	p.logger.Info("run complete",
		"total_genes", report.TotalEntities,
		"tumor_specific", report.SpecificEntities,
		"cross_tumor", report.CrossEntities,
		"outputs", len(report.Outputs),
		"elapsed", elapsed.Round(time.Millisecond))
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
