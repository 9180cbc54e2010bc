package visual

import (
	"testing"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
)

func testProfile() config.VariantProfile {
	return config.VariantProfile{
		SizeRange:      config.Range{Min: 3, Max: 10},
		EdgeWidthRange: config.Range{Min: 0.3, Max: 1.5},
		Thresholds:     config.ColorThresholds{High: 0.75, Moderate: 0.65},
	}
}

func TestMapStaysWithinOutputRanges(t *testing.T) {
	t.Parallel()

	m := NewMapper(0.5, 1.0, testProfile())
	for score := 0.5; score <= 1.0; score += 0.01 {
		attrs := m.Map(score)
		if attrs.Size < 3 || attrs.Size > 10 {
			t.Fatalf("size %v out of range for score %v", attrs.Size, score)
		}
		if attrs.EdgeWidth < 0.3 || attrs.EdgeWidth > 1.5 {
			t.Fatalf("edge width %v out of range for score %v", attrs.EdgeWidth, score)
		}
	}
}

func TestMapEndpoints(t *testing.T) {
	t.Parallel()

	m := NewMapper(0.5, 1.0, testProfile())

	if got := m.Map(0.5).Size; got != 3 {
		t.Fatalf("minimum score should map to minimum size, got %v", got)
	}
	if got := m.Map(1.0).Size; got != 10 {
		t.Fatalf("maximum score should map to maximum size, got %v", got)
	}
	if got := m.Map(0.75).Size; got != 6.5 {
		t.Fatalf("midpoint score should map to midpoint size, got %v", got)
	}
}

func TestMapClampsOutOfRangeScores(t *testing.T) {
	t.Parallel()

	m := NewMapper(0.5, 1.0, testProfile())

	if got := m.Map(0.2).Size; got != 3 {
		t.Fatalf("below-range score should clamp to minimum size, got %v", got)
	}
	if got := m.Map(1.4).Size; got != 10 {
		t.Fatalf("above-range score should clamp to maximum size, got %v", got)
	}
}

func TestMapBuckets(t *testing.T) {
	t.Parallel()

	m := NewMapper(0.5, 1.0, testProfile())

	cases := []struct {
		score float64
		want  domain.ColorBucket
	}{
		{0.90, domain.BucketHigh},
		{0.75, domain.BucketHigh},
		{0.70, domain.BucketModerate},
		{0.65, domain.BucketModerate},
		{0.60, domain.BucketLow},
		{0.55, domain.BucketLow},
	}
	for _, tc := range cases {
		if got := m.Map(tc.score).Bucket; got != tc.want {
			t.Fatalf("score %v: expected bucket %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestMapDegenerateRange(t *testing.T) {
	t.Parallel()

	m := NewMapper(0.7, 0.7, testProfile())
	if got := m.Map(0.7).Size; got != 10 {
		t.Fatalf("degenerate range should map to maximal size, got %v", got)
	}
}
