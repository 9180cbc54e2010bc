package render

import (
	"fmt"
	"math"
	"strings"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
)

// TreeLayout draws a directed prognosis tree: a fixed central node, fixed
// category boxes on a circle, and one node per (entity, category) pair
// colored by risk bucket. Cross-category instances become enlarged diamonds;
// their shape and tooltip are decided before the node is created, not patched
// in afterwards.
type TreeLayout struct{}

// NewTreeLayout returns the poor-prognosis tree layout.
func NewTreeLayout() TreeLayout {
	return TreeLayout{}
}

// Name identifies the layout inside the registry.
func (TreeLayout) Name() string {
	return "tree"
}

// Build assembles the directed tree graph.
func (l TreeLayout) Build(profile config.VariantProfile, view View) *Graph {
	g := &Graph{Directed: profile.Directed}

	g.Nodes = append(g.Nodes, Node{
		ID:          profile.CentralNode,
		Label:       profile.CentralNode,
		Size:        profile.CentralSize,
		Shape:       "ellipse",
		Color:       Color{Background: profile.CentralColor},
		Font:        Font{Size: 18, Bold: true},
		HasPosition: true,
		Fixed:       true,
	})

	branchColor := profile.BucketColors[string(domain.BucketHigh)]

	for idx, cat := range view.Categories {
		if len(cat.Entities) == 0 {
			continue
		}

		angle := 2 * math.Pi * float64(idx) / float64(len(view.Categories))
		x := profile.CategoryRadius * math.Cos(angle)
		y := profile.CategoryRadius * math.Sin(angle)

		g.Nodes = append(g.Nodes, Node{
			ID:          cat.Name,
			Label:       strings.TrimSuffix(cat.Name, " Tumor"),
			Size:        profile.CategorySize,
			Shape:       "box",
			Color:       Color{Background: cat.Color},
			Font:        Font{Size: 14, Bold: true},
			X:           x,
			Y:           y,
			HasPosition: true,
			Fixed:       true,
		})

		g.Edges = append(g.Edges, Edge{
			From:  profile.CentralNode,
			To:    cat.Name,
			Width: 3,
			Color: branchColor,
		})

		for _, ev := range cat.Entities {
			g.Nodes = append(g.Nodes, l.entityNode(profile, cat, ev))

			g.Edges = append(g.Edges, Edge{
				From:    cat.Name,
				To:      entityNodeID(ev.Entity, cat.Name),
				Width:   ev.Attrs.EdgeWidth,
				Color:   profile.BucketColors[string(ev.Attrs.Bucket)],
				Opacity: 0.8,
			})
		}
	}

	return g
}

func (l TreeLayout) entityNode(profile config.VariantProfile, cat CategoryView, ev EntityView) Node {
	node := Node{
		ID:    entityNodeID(ev.Entity, cat.Name),
		Label: ev.Entity,
		Title: fmt.Sprintf("<b>%s</b><br>Correlation: %.3f<br>Risk Level: %s<br>Tumor: %s",
			ev.Entity, ev.Score, riskLevel(ev.Attrs.Bucket), cat.Name),
		Size:  ev.Attrs.Size,
		Shape: "dot",
		Color: Color{Background: profile.BucketColors[string(ev.Attrs.Bucket)]},
		Font:  Font{Size: 10},
	}

	if ev.Class == domain.CrossCategory {
		node.Shape = "diamond"
		node.Size *= 1.5
		node.Title = fmt.Sprintf("%s<br><b>Cross-tumor gene</b> (in %d tumors)", node.Title, ev.CategoryCount)
	}

	return node
}

func entityNodeID(entity, category string) string {
	return entity + "_" + category
}

func riskLevel(bucket domain.ColorBucket) string {
	switch bucket {
	case domain.BucketHigh:
		return "High Risk"
	case domain.BucketModerate:
		return "Moderate Risk"
	default:
		return "Low Risk"
	}
}
