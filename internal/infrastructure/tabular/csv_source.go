package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
	"TumorNetViz/internal/ports"
)

// CSVSource reads one CSV table per category from a directory. The file
// basename is the category identifier.
type CSVSource struct {
	dir          string
	entityColumn string
	scoreColumn  string
	minScore     float64
	logger       *slog.Logger
}

var _ ports.TableSource = (*CSVSource)(nil)

// NewCSVSource wires the data directory and column mapping from configuration.
func NewCSVSource(data config.DataConfig, minScore float64, log *slog.Logger) *CSVSource {
	return &CSVSource{
		dir:          data.Dir,
		entityColumn: data.EntityColumn,
		scoreColumn:  data.ScoreColumn,
		minScore:     minScore,
		logger:       log,
	}
}

// DiscoverCategories lists the categories present in the data directory.
func (s *CSVSource) DiscoverCategories() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("glob data dir %s: %w", s.dir, err)
	}

	categories := make([]string, 0, len(paths))
	for _, path := range paths {
		categories = append(categories, strings.TrimSuffix(filepath.Base(path), ".csv"))
	}
	sort.Strings(categories)
	return categories, nil
}

// Load reads every discovered category, keeping only rows at or above the
// score threshold. A category that cannot be read or lacks a required column
// is logged and omitted; the remaining categories still load.
func (s *CSVSource) Load(ctx context.Context) (map[string]domain.CategoryTable, error) {
	categories, err := s.DiscoverCategories()
	if err != nil {
		return nil, err
	}

	tables := make(map[string]domain.CategoryTable, len(categories))
	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := s.loadCategory(category)
		if err != nil {
			s.error("load category", "category", category, "error", err)
			continue
		}

		s.debug("category loaded",
			"category", category,
			"rows", table.Loaded,
			"kept", len(table.Rows),
			"min_score", s.minScore)
		tables[category] = table
	}

	return tables, nil
}

func (s *CSVSource) loadCategory(category string) (domain.CategoryTable, error) {
	path := filepath.Join(s.dir, category+".csv")

	file, err := os.Open(path)
	if err != nil {
		return domain.CategoryTable{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return domain.CategoryTable{}, fmt.Errorf("read header of %s: %w", path, err)
	}

	entityIdx, err := columnIndex(header, s.entityColumn)
	if err != nil {
		return domain.CategoryTable{}, fmt.Errorf("%s: %w", path, err)
	}
	scoreIdx, err := columnIndex(header, s.scoreColumn)
	if err != nil {
		return domain.CategoryTable{}, fmt.Errorf("%s: %w", path, err)
	}

	table := domain.CategoryTable{Category: category}
	rows, err := reader.ReadAll()
	if err != nil {
		return domain.CategoryTable{}, fmt.Errorf("read rows of %s: %w", path, err)
	}

	for i, row := range rows {
		if len(row) <= entityIdx || len(row) <= scoreIdx {
			return domain.CategoryTable{}, fmt.Errorf("%s: row %d has %d fields, need %d", path, i+2, len(row), max(entityIdx, scoreIdx)+1)
		}

		table.Loaded++

		score, err := strconv.ParseFloat(strings.TrimSpace(row[scoreIdx]), 64)
		if err != nil {
			return domain.CategoryTable{}, fmt.Errorf("%s: row %d: parse %s %q: %w", path, i+2, s.scoreColumn, row[scoreIdx], err)
		}

		if score < s.minScore {
			continue
		}

		table.Rows = append(table.Rows, domain.ScoreRecord{
			Category: category,
			Entity:   strings.TrimSpace(row[entityIdx]),
			Score:    score,
		})
	}

	return table, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("required column %q not found in header %v", name, header)
}

func (s *CSVSource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *CSVSource) error(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}
