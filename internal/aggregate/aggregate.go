package aggregate

import (
	"sort"

	"TumorNetViz/internal/domain"
)

// Aggregate builds the entity membership in a single pass over all tables.
// Duplicate (entity, category) rows keep the higher score so the strongest
// signal is never discarded. When maxPerCategory is positive, only the top-N
// rows by score within each category take part; an entity capped out of a
// category is simply absent from that category's membership.
func Aggregate(tables map[string]domain.CategoryTable, maxPerCategory int) domain.Membership {
	membership := make(domain.Membership)

	for _, category := range SortedCategories(tables) {
		rows := tables[category].Rows
		if maxPerCategory > 0 && len(rows) > maxPerCategory {
			rows = topByScore(rows, maxPerCategory)
		}

		for _, row := range rows {
			scores, ok := membership[row.Entity]
			if !ok {
				scores = make(map[string]float64)
				membership[row.Entity] = scores
			}
			if prev, ok := scores[category]; !ok || row.Score > prev {
				scores[category] = row.Score
			}
		}
	}

	return membership
}

// Classify reports whether an entity spans more than one category. It is a
// read-only query over the membership, never stored alongside it.
func Classify(membership domain.Membership, entity string) domain.Classification {
	if len(membership[entity]) > 1 {
		return domain.CrossCategory
	}
	return domain.CategorySpecific
}

// RepresentativeCategory is the category with the highest score for an
// entity. Ties resolve to the first category in sorted name order, keeping
// the choice deterministic.
func RepresentativeCategory(scores map[string]float64) string {
	var (
		best      string
		bestScore float64
		found     bool
	)
	for _, category := range sortedKeys(scores) {
		if !found || scores[category] > bestScore {
			best = category
			bestScore = scores[category]
			found = true
		}
	}
	return best
}

// Counts tallies category-specific and cross-category entities.
func Counts(membership domain.Membership) (specific, cross int) {
	for entity := range membership {
		if Classify(membership, entity) == domain.CrossCategory {
			cross++
		} else {
			specific++
		}
	}
	return specific, cross
}

// SortedCategories returns the table keys in name order; the aggregation and
// all downstream iteration use it so output is independent of map order.
func SortedCategories(tables map[string]domain.CategoryTable) []string {
	categories := make([]string, 0, len(tables))
	for category := range tables {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// topByScore keeps the N highest-scoring rows. The sort is stable so rows
// with equal scores keep their original file order.
func topByScore(rows []domain.ScoreRecord, n int) []domain.ScoreRecord {
	sorted := make([]domain.ScoreRecord, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted[:n]
}

func sortedKeys(scores map[string]float64) []string {
	keys := make([]string, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
