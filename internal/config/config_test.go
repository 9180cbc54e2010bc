package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(dataDirEnv, "")
	t.Setenv(outputDirEnv, "")
	t.Setenv(databaseDSNEnv, "")

	cfg := Load()

	if cfg.Filter.MinScore != 0.5 {
		t.Fatalf("default minimum score should be 0.5, got %v", cfg.Filter.MinScore)
	}
	if cfg.Filter.MaxEntitiesPerCategory != 1000 {
		t.Fatalf("default per-category cap should be 1000, got %d", cfg.Filter.MaxEntitiesPerCategory)
	}
	if cfg.Data.EntityColumn != "Gene Symbol" || cfg.Data.ScoreColumn != "PCC" {
		t.Fatalf("unexpected default columns: %+v", cfg.Data)
	}
	if len(cfg.Variants) != 2 {
		t.Fatalf("expected 2 default variants, got %d", len(cfg.Variants))
	}
	if cfg.Variants[0].Layout != "network" || cfg.Variants[1].Layout != "tree" {
		t.Fatalf("unexpected variant layouts: %s, %s", cfg.Variants[0].Layout, cfg.Variants[1].Layout)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
data:
  dir: /srv/tables
filter:
  minScore: 0.6
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(dataDirEnv, "")

	cfg := Load()

	if cfg.Logging.Level != "debug" {
		t.Fatalf("file log level not applied, got %s", cfg.Logging.Level)
	}
	if cfg.Data.Dir != "/srv/tables" {
		t.Fatalf("file data dir not applied, got %s", cfg.Data.Dir)
	}
	if cfg.Filter.MinScore != 0.6 {
		t.Fatalf("file minimum score not applied, got %v", cfg.Filter.MinScore)
	}
	// unset file fields keep their defaults
	if cfg.Filter.MaxEntitiesPerCategory != 1000 {
		t.Fatalf("per-category cap should keep its default, got %d", cfg.Filter.MaxEntitiesPerCategory)
	}
	if len(cfg.Variants) != 2 {
		t.Fatalf("variants should keep their defaults, got %d", len(cfg.Variants))
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(dataDirEnv, "/mnt/csv")
	t.Setenv(outputDirEnv, "/mnt/out")
	t.Setenv(databaseDSNEnv, "postgres://viz@localhost/viz")
	t.Setenv(viewerAddrEnv, ":9090")

	cfg := Load()

	if cfg.Data.Dir != "/mnt/csv" {
		t.Fatalf("data dir override not applied, got %s", cfg.Data.Dir)
	}
	if cfg.Output.Dir != "/mnt/out" {
		t.Fatalf("output dir override not applied, got %s", cfg.Output.Dir)
	}
	if cfg.Database.DSN != "postgres://viz@localhost/viz" {
		t.Fatalf("database DSN override not applied")
	}
	if cfg.Viewer.Addr != ":9090" {
		t.Fatalf("viewer address override not applied, got %s", cfg.Viewer.Addr)
	}
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(dataDirEnv, "")

	cfg := Load()
	if cfg.Filter.MinScore != 0.5 {
		t.Fatalf("missing config file should fall back to defaults")
	}
}

func TestCategoryColorFallback(t *testing.T) {
	t.Parallel()

	profile := defaultNetworkVariant()
	if got := profile.CategoryColor("BRCA Tumor"); got != "#0074D9" {
		t.Fatalf("known category should resolve from the palette, got %s", got)
	}
	if got := profile.CategoryColor("UNKNOWN Tumor"); got != profile.FallbackColor {
		t.Fatalf("unknown category should resolve to the fallback, got %s", got)
	}
}
