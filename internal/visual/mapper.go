package visual

import (
	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
)

// Mapper derives node size, edge width, and color bucket from a score by
// linear interpolation over a fixed input range. Pure and stateless.
type Mapper struct {
	minScore, maxScore   float64
	sizeRange, edgeRange config.Range
	thresholds           config.ColorThresholds
}

// NewMapper builds a mapper for one variant profile. Scores below minScore
// never reach the mapper in normal operation; they clamp to the range floor.
func NewMapper(minScore, maxScore float64, profile config.VariantProfile) Mapper {
	return Mapper{
		minScore:   minScore,
		maxScore:   maxScore,
		sizeRange:  profile.SizeRange,
		edgeRange:  profile.EdgeWidthRange,
		thresholds: profile.Thresholds,
	}
}

// MinScore reports the lower bound of the input range.
func (m Mapper) MinScore() float64 {
	return m.minScore
}

// Map converts one score into its visual attributes.
func (m Mapper) Map(score float64) domain.VisualAttributes {
	t := m.interpolate(score)
	return domain.VisualAttributes{
		Size:      m.sizeRange.Min + t*(m.sizeRange.Max-m.sizeRange.Min),
		EdgeWidth: m.edgeRange.Min + t*(m.edgeRange.Max-m.edgeRange.Min),
		Bucket:    m.bucket(score),
	}
}

// interpolate clamps to [0, 1]. A degenerate range (max == min) maps to
// maximal emphasis rather than dividing by zero.
func (m Mapper) interpolate(score float64) float64 {
	if m.maxScore <= m.minScore {
		return 1.0
	}
	t := (score - m.minScore) / (m.maxScore - m.minScore)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (m Mapper) bucket(score float64) domain.ColorBucket {
	switch {
	case score >= m.thresholds.High:
		return domain.BucketHigh
	case score >= m.thresholds.Moderate:
		return domain.BucketModerate
	default:
		return domain.BucketLow
	}
}
