package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"TumorNetViz/internal/domain"
	"TumorNetViz/internal/ports"
)

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository persists run summaries into Postgres.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.SummaryRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveReport inserts the run row and its per-category counts.
func (r *PostgresRepository) SaveReport(ctx context.Context, report domain.RunReport) error {
	if r.db == nil {
		return nil
	}

	var runID int64
	err := psql.Insert("visualization_runs").
		Columns("generated_at", "total_entities", "specific_entities", "cross_entities", "outputs").
		Values(report.GeneratedAt, report.TotalEntities, report.SpecificEntities, report.CrossEntities, pq.Array(report.Outputs)).
		Suffix("RETURNING id").
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&runID)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if len(report.Categories) == 0 {
		return nil
	}

	insert := psql.Insert("visualization_run_categories").
		Columns("run_id", "category", "loaded", "kept", "specific", "cross_count")
	for _, cat := range report.Categories {
		insert = insert.Values(runID, cat.Category, cat.Loaded, cat.Kept, cat.Specific, cat.Cross)
	}

	if _, err := insert.RunWith(r.db).ExecContext(ctx); err != nil {
		return fmt.Errorf("insert run categories: %w", err)
	}

	return nil
}

// LatestReport returns the most recent run summary.
func (r *PostgresRepository) LatestReport(ctx context.Context) (domain.RunReport, error) {
	if r.db == nil {
		return domain.RunReport{}, fmt.Errorf("repository is not configured")
	}

	var (
		runID   int64
		report  domain.RunReport
		outputs pq.StringArray
	)
	err := psql.Select("id", "generated_at", "total_entities", "specific_entities", "cross_entities", "outputs").
		From("visualization_runs").
		OrderBy("generated_at DESC").
		Limit(1).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&runID, &report.GeneratedAt, &report.TotalEntities, &report.SpecificEntities, &report.CrossEntities, &outputs)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("query latest run: %w", err)
	}
	report.Outputs = outputs

	rows, err := psql.Select("category", "loaded", "kept", "specific", "cross_count").
		From("visualization_run_categories").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("category").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("query run categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cat domain.CategorySummary
		if err := rows.Scan(&cat.Category, &cat.Loaded, &cat.Kept, &cat.Specific, &cat.Cross); err != nil {
			return domain.RunReport{}, fmt.Errorf("scan run category: %w", err)
		}
		report.Categories = append(report.Categories, cat)
	}

	if err := rows.Err(); err != nil {
		return domain.RunReport{}, fmt.Errorf("rows iteration: %w", err)
	}

	return report, nil
}
