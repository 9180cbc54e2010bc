package ports

import (
	"context"

	"TumorNetViz/internal/domain"
)

// TableSource loads per-category score tables from the configured location.
// Categories that fail to load are reported and omitted, never fatal.
type TableSource interface {
	Load(ctx context.Context) (map[string]domain.CategoryTable, error)
}

// PageRenderer turns the aggregated membership into one browser-viewable page.
type PageRenderer interface {
	Name() string
	Render(membership domain.Membership, tables map[string]domain.CategoryTable) (string, error)
}

// SummaryRepository persists run reports for later inspection.
type SummaryRepository interface {
	SaveReport(ctx context.Context, report domain.RunReport) error
	LatestReport(ctx context.Context) (domain.RunReport, error)
}
