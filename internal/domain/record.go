package domain

import "time"

// ScoreRecord is a single surviving table row: one entity scored within one category.
type ScoreRecord struct {
	Category string
	Entity   string
	Score    float64
}

// CategoryTable holds the threshold-filtered rows of one category in original file order.
type CategoryTable struct {
	Category string
	Rows     []ScoreRecord
	Loaded   int // rows read before filtering
}

// Membership maps entity -> category -> score. Built once per aggregation pass
// and read-only afterwards.
type Membership map[string]map[string]float64

// Classification describes how an entity spreads across categories.
type Classification string

const (
	CategorySpecific Classification = "category-specific"
	CrossCategory    Classification = "cross-category"
)

// ColorBucket assigns a score to one of the fixed emphasis levels.
type ColorBucket string

const (
	BucketHigh     ColorBucket = "high"
	BucketModerate ColorBucket = "moderate"
	BucketLow      ColorBucket = "low"
)

// VisualAttributes are the per-score rendering parameters derived by the mapper.
type VisualAttributes struct {
	Size      float64
	EdgeWidth float64
	Bucket    ColorBucket
}

// CategorySummary reports per-category counts for the run feedback.
type CategorySummary struct {
	Category string `json:"category"`
	Loaded   int    `json:"loaded"`
	Kept     int    `json:"kept"`
	Specific int    `json:"specific"`
	Cross    int    `json:"cross"`
}

// RunReport is the terminal summary of one pipeline execution.
type RunReport struct {
	GeneratedAt      time.Time         `json:"generatedAt"`
	Categories       []CategorySummary `json:"categories"`
	TotalEntities    int               `json:"totalEntities"`
	SpecificEntities int               `json:"specificEntities"`
	CrossEntities    int               `json:"crossEntities"`
	Outputs          []string          `json:"outputs"`
}
