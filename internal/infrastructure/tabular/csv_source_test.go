package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"TumorNetViz/internal/config"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func newSource(dir string, minScore float64) *CSVSource {
	return NewCSVSource(config.DataConfig{
		Dir:          dir,
		EntityColumn: "Gene Symbol",
		ScoreColumn:  "PCC",
	}, minScore, nil)
}

func TestDiscoverCategories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "BRCA Tumor.csv", "Gene Symbol,PCC\n")
	writeCSV(t, dir, "ACC Tumor.csv", "Gene Symbol,PCC\n")

	categories, err := newSource(dir, 0.5).DiscoverCategories()
	if err != nil {
		t.Fatalf("DiscoverCategories error: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0] != "ACC Tumor" || categories[1] != "BRCA Tumor" {
		t.Fatalf("unexpected category order: %v", categories)
	}
}

func TestLoadFiltersByThreshold(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "BRCA Tumor.csv", "Gene Symbol,PCC\nGCH1,0.91\nTP53,0.40\nBRCA1,0.62\n")

	tables, err := newSource(dir, 0.5).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	table, ok := tables["BRCA Tumor"]
	if !ok {
		t.Fatalf("BRCA Tumor missing from result")
	}

	if table.Loaded != 3 {
		t.Fatalf("expected 3 loaded rows, got %d", table.Loaded)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Entity != "GCH1" || table.Rows[1].Entity != "BRCA1" {
		t.Fatalf("row order not preserved: %+v", table.Rows)
	}
	if table.Rows[0].Category != "BRCA Tumor" {
		t.Fatalf("unexpected category on record: %s", table.Rows[0].Category)
	}
}

func TestLoadNoFilterKeepsAllRows(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "GBM Tumor.csv", "Gene Symbol,PCC\nA,0.9\nB,-0.8\nC,0.1\n")

	tables, err := newSource(dir, -1).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	table := tables["GBM Tumor"]
	if len(table.Rows) != table.Loaded {
		t.Fatalf("expected all %d rows kept, got %d", table.Loaded, len(table.Rows))
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
}

func TestLoadMissingColumnOmitsCategory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "Good.csv", "Gene Symbol,PCC\nGCH1,0.8\n")
	writeCSV(t, dir, "Bad.csv", "Symbol,Correlation\nGCH1,0.8\n")

	tables, err := newSource(dir, 0.5).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if _, ok := tables["Bad"]; ok {
		t.Fatalf("category with missing column should be omitted")
	}
	if _, ok := tables["Good"]; !ok {
		t.Fatalf("valid category should survive a sibling failure")
	}
}

func TestLoadMalformedScoreOmitsCategory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "Broken.csv", "Gene Symbol,PCC\nGCH1,not-a-number\n")
	writeCSV(t, dir, "Fine.csv", "Gene Symbol,PCC\nGCH1,0.7\n")

	tables, err := newSource(dir, 0.5).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if _, ok := tables["Broken"]; ok {
		t.Fatalf("malformed category should be omitted")
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 surviving category, got %d", len(tables))
	}
}

func TestLoadEmptyAfterFilterIsNotAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "OV Tumor.csv", "Gene Symbol,PCC\nA,0.1\nB,0.2\n")

	tables, err := newSource(dir, 0.5).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	table, ok := tables["OV Tumor"]
	if !ok {
		t.Fatalf("empty category must still be present")
	}
	if table.Loaded != 2 || len(table.Rows) != 0 {
		t.Fatalf("expected loaded=2 kept=0, got loaded=%d kept=%d", table.Loaded, len(table.Rows))
	}
}
