package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "TUMOR_NETVIZ_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	dataDirEnv     = "TUMOR_NETVIZ_DATA_DIR"
	outputDirEnv   = "TUMOR_NETVIZ_OUTPUT_DIR"
	viewerAddrEnv  = "TUMOR_NETVIZ_VIEWER_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig    `yaml:"logging"`
	Data     DataConfig       `yaml:"data"`
	Filter   FilterConfig     `yaml:"filter"`
	Output   OutputConfig     `yaml:"output"`
	Database DatabaseConfig   `yaml:"database"`
	Viewer   ViewerConfig     `yaml:"viewer"`
	Variants []VariantProfile `yaml:"variants"`
}

// LoggingConfig controls slog verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DataConfig addresses the per-category CSV tables.
type DataConfig struct {
	Dir          string `yaml:"dir"`
	EntityColumn string `yaml:"entityColumn"`
	ScoreColumn  string `yaml:"scoreColumn"`
}

// FilterConfig bounds which rows and entities survive loading and aggregation.
type FilterConfig struct {
	MinScore               float64 `yaml:"minScore"`
	MaxEntitiesPerCategory int     `yaml:"maxEntitiesPerCategory"`
}

// OutputConfig names where rendered pages land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DatabaseConfig describes the optional run-summary store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ViewerConfig configures the output-serving HTTP process.
type ViewerConfig struct {
	Addr string `yaml:"addr"`
}

// Range is a (min, max) output interval for the visual mapper.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ColorThresholds are the fixed score cut-offs for the color buckets.
type ColorThresholds struct {
	High     float64 `yaml:"high"`
	Moderate float64 `yaml:"moderate"`
}

// PhysicsParams are handed through to the client-side layout engine untouched.
type PhysicsParams struct {
	Enabled        bool    `yaml:"enabled"`
	Gravity        float64 `yaml:"gravity"`
	CentralGravity float64 `yaml:"centralGravity"`
	SpringLength   float64 `yaml:"springLength"`
	SpringStrength float64 `yaml:"springStrength"`
	Damping        float64 `yaml:"damping"`
	AvoidOverlap   float64 `yaml:"avoidOverlap"`
}

// VariantProfile is one complete visualization configuration. Profiles are
// immutable values, so both variants render side by side from one process
// without shared state.
type VariantProfile struct {
	Name           string            `yaml:"name"`
	Layout         string            `yaml:"layout"`
	Title          string            `yaml:"title"`
	Subtitle       string            `yaml:"subtitle"`
	CentralNode    string            `yaml:"centralNode"`
	CentralColor   string            `yaml:"centralColor"`
	CentralSize    float64           `yaml:"centralSize"`
	CategorySize   float64           `yaml:"categorySize"`
	CategoryRadius float64           `yaml:"categoryRadius"`
	SpiralFactor   float64           `yaml:"spiralFactor"`
	Directed       bool              `yaml:"directed"`
	SizeRange      Range             `yaml:"sizeRange"`
	EdgeWidthRange Range             `yaml:"edgeWidthRange"`
	Thresholds     ColorThresholds   `yaml:"colorThresholds"`
	CategoryColors map[string]string `yaml:"categoryColors"`
	FallbackColor  string            `yaml:"fallbackColor"`
	CrossColor     string            `yaml:"crossColor"`
	CrossBorder    string            `yaml:"crossBorder"`
	BucketColors   map[string]string `yaml:"bucketColors"`
	Physics        PhysicsParams     `yaml:"physics"`
}

// CategoryColor resolves a category to its palette entry.
func (v VariantProfile) CategoryColor(category string) string {
	if color, ok := v.CategoryColors[category]; ok {
		return color
	}
	return v.FallbackColor
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Variants) == 0 {
		cfg.Variants = defaultConfig().Variants
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(dataDirEnv); v != "" {
		c.Data.Dir = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(viewerAddrEnv); v != "" {
		c.Viewer.Addr = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Data.Dir != "" {
		base.Data.Dir = override.Data.Dir
	}
	if override.Data.EntityColumn != "" {
		base.Data.EntityColumn = override.Data.EntityColumn
	}
	if override.Data.ScoreColumn != "" {
		base.Data.ScoreColumn = override.Data.ScoreColumn
	}

	if override.Filter.MinScore != 0 {
		base.Filter.MinScore = override.Filter.MinScore
	}
	if override.Filter.MaxEntitiesPerCategory != 0 {
		base.Filter.MaxEntitiesPerCategory = override.Filter.MaxEntitiesPerCategory
	}

	if override.Output.Dir != "" {
		base.Output = override.Output
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Viewer.Addr != "" {
		base.Viewer = override.Viewer
	}

	if len(override.Variants) > 0 {
		base.Variants = override.Variants
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Data: DataConfig{
			Dir:          "data",
			EntityColumn: "Gene Symbol",
			ScoreColumn:  "PCC",
		},
		Filter: FilterConfig{
			MinScore:               0.5,
			MaxEntitiesPerCategory: 1000,
		},
		Output:   OutputConfig{Dir: "output"},
		Database: DatabaseConfig{DSN: ""},
		Viewer:   ViewerConfig{Addr: ":8080"},
		Variants: []VariantProfile{
			defaultNetworkVariant(),
			defaultTreeVariant(),
		},
	}
}

func defaultNetworkVariant() VariantProfile {
	return VariantProfile{
		Name:           "multi_tumor_network",
		Layout:         "network",
		Title:          "Multi-Tumor Network with GCH1 as Central Node",
		Subtitle:       "Visualization of GCH1 gene correlations with multiple tumor types and associated genes",
		CentralNode:    "GCH1",
		CentralColor:   "#FF4136",
		CentralSize:    30,
		CategorySize:   20,
		CategoryRadius: 400,
		SpiralFactor:   0.35,
		Directed:       false,
		SizeRange:      Range{Min: 3, Max: 10},
		EdgeWidthRange: Range{Min: 0.3, Max: 1.5},
		Thresholds:     ColorThresholds{High: 0.75, Moderate: 0.65},
		CategoryColors: map[string]string{
			"ACC Tumor":  "#3D9970",
			"BRCA Tumor": "#0074D9",
			"ESCA Tumor": "#FF851B",
			"GBM Tumor":  "#B10DC9",
			"KICH Tumor": "#FF4081",
			"LGG Tumor":  "#2ECC40",
			"PCPG Tumor": "#F012BE",
			"TGCT Tumor": "#01FF70",
			"SARC Tumor": "#85144b",
			"OV Tumor":   "#FFDC00",
			"BLCA Tumor": "#39CCCC",
		},
		FallbackColor: "#666666",
		CrossColor:    "#FF9800",
		CrossBorder:   "#E65100",
		Physics: PhysicsParams{
			Enabled:        false,
			Gravity:        -2000,
			CentralGravity: 0.05,
			SpringLength:   150,
			SpringStrength: 0.05,
			Damping:        0.6,
			AvoidOverlap:   0.8,
		},
	}
}

func defaultTreeVariant() VariantProfile {
	return VariantProfile{
		Name:           "bad_survival_tree",
		Layout:         "tree",
		Title:          "Survival Tree for Poor Prognosis",
		Subtitle:       "Hierarchical view of genes associated with poor survival outcome across tumor types",
		CentralNode:    "Poor Prognosis",
		CentralColor:   "#E31A1C",
		CentralSize:    45,
		CategorySize:   30,
		CategoryRadius: 250,
		SpiralFactor:   0.35,
		Directed:       true,
		SizeRange:      Range{Min: 8, Max: 16},
		EdgeWidthRange: Range{Min: 0.5, Max: 2.5},
		Thresholds:     ColorThresholds{High: 0.75, Moderate: 0.65},
		CategoryColors: map[string]string{
			"ACC Tumor":  "#1F77B4",
			"BRCA Tumor": "#FF7F0E",
			"ESCA Tumor": "#2CA02C",
			"GBM Tumor":  "#D62728",
			"KICH Tumor": "#9467BD",
			"LGG Tumor":  "#8C564B",
			"PCPG Tumor": "#E377C2",
			"TGCT Tumor": "#FFC125",
		},
		FallbackColor: "#AAAAAA",
		CrossColor:    "#FF9800",
		CrossBorder:   "#E65100",
		BucketColors: map[string]string{
			"high":     "#8B0000",
			"moderate": "#FF4500",
			"low":      "#FFA500",
		},
		Physics: PhysicsParams{
			Enabled:        true,
			Gravity:        -2500,
			CentralGravity: 0.5,
			SpringLength:   150,
			SpringStrength: 0.1,
			Damping:        0.3,
		},
	}
}
