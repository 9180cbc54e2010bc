package render

import (
	"sort"

	"TumorNetViz/internal/aggregate"
	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
	"TumorNetViz/internal/visual"
)

// View is the fully classified, visually mapped input handed to a layout.
// Every entity's final classification and attributes are computed here, before
// any node or edge exists, so no element needs mutation after construction.
type View struct {
	Categories []CategoryView
	Cross      []CrossEntity
}

// CategoryView carries one category's surviving entities in descending score
// order, deduplicated and cap-consistent with the membership.
type CategoryView struct {
	Name     string
	Color    string
	Entities []EntityView
}

// EntityView is one (entity, category) pair ready to draw.
type EntityView struct {
	Entity        string
	Score         float64
	Attrs         domain.VisualAttributes
	Class         domain.Classification
	CategoryCount int
}

// CrossEntity is an entity present in several categories, with one score and
// attribute set per category and a representative category for placement.
type CrossEntity struct {
	Entity         string
	Representative string
	Scores         []CategoryScore
}

// CategoryScore is one category's contribution to a cross entity.
type CategoryScore struct {
	Category string
	Color    string
	Score    float64
	Attrs    domain.VisualAttributes
}

// BuildView derives the renderable view from the aggregated membership.
// Table rows supply the per-category ordering; the membership is the single
// source of truth for which entities exist and with which score.
func BuildView(profile config.VariantProfile, mapper visual.Mapper, membership domain.Membership, tables map[string]domain.CategoryTable) View {
	var view View

	for _, category := range aggregate.SortedCategories(tables) {
		cat := CategoryView{
			Name:  category,
			Color: profile.CategoryColor(category),
		}

		seen := make(map[string]struct{})
		for _, row := range tables[category].Rows {
			if _, ok := seen[row.Entity]; ok {
				continue
			}
			seen[row.Entity] = struct{}{}

			score, ok := membership[row.Entity][category]
			if !ok {
				// capped out of this category's top-N
				continue
			}

			cat.Entities = append(cat.Entities, EntityView{
				Entity:        row.Entity,
				Score:         score,
				Attrs:         mapper.Map(score),
				Class:         aggregate.Classify(membership, row.Entity),
				CategoryCount: len(membership[row.Entity]),
			})
		}

		sort.SliceStable(cat.Entities, func(i, j int) bool {
			return cat.Entities[i].Score > cat.Entities[j].Score
		})

		view.Categories = append(view.Categories, cat)
	}

	view.Cross = buildCross(profile, mapper, membership)
	return view
}

func buildCross(profile config.VariantProfile, mapper visual.Mapper, membership domain.Membership) []CrossEntity {
	entities := make([]string, 0)
	for entity := range membership {
		if aggregate.Classify(membership, entity) == domain.CrossCategory {
			entities = append(entities, entity)
		}
	}
	sort.Strings(entities)

	cross := make([]CrossEntity, 0, len(entities))
	for _, entity := range entities {
		scores := membership[entity]

		ce := CrossEntity{
			Entity:         entity,
			Representative: aggregate.RepresentativeCategory(scores),
		}

		categories := make([]string, 0, len(scores))
		for category := range scores {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			ce.Scores = append(ce.Scores, CategoryScore{
				Category: category,
				Color:    profile.CategoryColor(category),
				Score:    scores[category],
				Attrs:    mapper.Map(scores[category]),
			})
		}

		cross = append(cross, ce)
	}

	return cross
}

// RepresentativeScore returns the attributes of the representative category.
func (c CrossEntity) RepresentativeScore() CategoryScore {
	for _, cs := range c.Scores {
		if cs.Category == c.Representative {
			return cs
		}
	}
	return CategoryScore{}
}
