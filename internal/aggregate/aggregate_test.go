package aggregate

import (
	"reflect"
	"testing"

	"TumorNetViz/internal/domain"
)

func exampleTables() map[string]domain.CategoryTable {
	return map[string]domain.CategoryTable{
		"A": {
			Category: "A",
			Rows: []domain.ScoreRecord{
				{Category: "A", Entity: "g1", Score: 0.9},
				{Category: "A", Entity: "g2", Score: 0.6},
			},
		},
		"B": {
			Category: "B",
			Rows: []domain.ScoreRecord{
				{Category: "B", Entity: "g1", Score: 0.7},
				{Category: "B", Entity: "g3", Score: 0.55},
			},
		},
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	membership := Aggregate(exampleTables(), 0)

	want := domain.Membership{
		"g1": {"A": 0.9, "B": 0.7},
		"g2": {"A": 0.6},
		"g3": {"B": 0.55},
	}
	if !reflect.DeepEqual(membership, want) {
		t.Fatalf("unexpected membership: %v", membership)
	}

	if got := Classify(membership, "g1"); got != domain.CrossCategory {
		t.Fatalf("g1 should be cross-category, got %s", got)
	}
	if got := Classify(membership, "g2"); got != domain.CategorySpecific {
		t.Fatalf("g2 should be category-specific, got %s", got)
	}
	if got := Classify(membership, "g3"); got != domain.CategorySpecific {
		t.Fatalf("g3 should be category-specific, got %s", got)
	}

	if rep := RepresentativeCategory(membership["g1"]); rep != "A" {
		t.Fatalf("representative of g1 should be A, got %s", rep)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	t.Parallel()

	tables := exampleTables()
	first := Aggregate(tables, 0)
	second := Aggregate(tables, 0)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation is not idempotent: %v vs %v", first, second)
	}
}

func TestAggregateKeepsMaxOnDuplicate(t *testing.T) {
	t.Parallel()

	tables := map[string]domain.CategoryTable{
		"A": {
			Category: "A",
			Rows: []domain.ScoreRecord{
				{Category: "A", Entity: "g1", Score: 0.8},
				{Category: "A", Entity: "g1", Score: 0.6},
			},
		},
	}

	membership := Aggregate(tables, 0)
	if got := membership["g1"]["A"]; got != 0.8 {
		t.Fatalf("duplicate should keep the higher score, got %v", got)
	}

	// the same result regardless of duplicate order
	tables["A"].Rows[0], tables["A"].Rows[1] = tables["A"].Rows[1], tables["A"].Rows[0]
	membership = Aggregate(tables, 0)
	if got := membership["g1"]["A"]; got != 0.8 {
		t.Fatalf("duplicate order changed the result, got %v", got)
	}
}

func TestAggregateCapDropsLowScoringEntities(t *testing.T) {
	t.Parallel()

	membership := Aggregate(exampleTables(), 1)

	if _, ok := membership["g2"]; ok {
		t.Fatalf("g2 should be capped out of category A entirely")
	}
	if _, ok := membership["g1"]["A"]; !ok {
		t.Fatalf("g1 should survive the cap in A")
	}
	if _, ok := membership["g3"]["B"]; !ok {
		t.Fatalf("g3 should survive the cap in B")
	}

	// the cap is applied before classification: g1 stays cross-category
	// because it leads both categories
	if got := Classify(membership, "g1"); got != domain.CrossCategory {
		t.Fatalf("g1 should remain cross-category, got %s", got)
	}
}

func TestRepresentativeCategoryTieBreaksByName(t *testing.T) {
	t.Parallel()

	scores := map[string]float64{"B": 0.7, "A": 0.7, "C": 0.6}
	if rep := RepresentativeCategory(scores); rep != "A" {
		t.Fatalf("tie should resolve to first sorted category, got %s", rep)
	}
}

func TestCounts(t *testing.T) {
	t.Parallel()

	specific, cross := Counts(Aggregate(exampleTables(), 0))
	if specific != 2 || cross != 1 {
		t.Fatalf("expected specific=2 cross=1, got specific=%d cross=%d", specific, cross)
	}
}
