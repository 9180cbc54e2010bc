package render

import (
	"fmt"
	"math"
	"strings"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
)

const genesPerSpiralTurn = 15

// NetworkLayout draws a central gene node surrounded by radially placed
// category nodes, category-specific entities on a score-descending spiral,
// and cross-category entities as shared diamond nodes pulled inward.
type NetworkLayout struct{}

// NewNetworkLayout returns the GCH1-style radial layout.
func NewNetworkLayout() NetworkLayout {
	return NetworkLayout{}
}

// Name identifies the layout inside the registry.
func (NetworkLayout) Name() string {
	return "network"
}

// Build assembles the graph. Central and category nodes are fixed in place;
// entity nodes keep their seed position but stay draggable.
func (l NetworkLayout) Build(profile config.VariantProfile, view View) *Graph {
	g := &Graph{Directed: profile.Directed}

	g.Nodes = append(g.Nodes, Node{
		ID:          profile.CentralNode,
		Label:       profile.CentralNode,
		Title:       fmt.Sprintf("%s (Central Gene)", profile.CentralNode),
		Size:        profile.CentralSize,
		Shape:       "dot",
		Color:       Color{Background: profile.CentralColor},
		BorderWidth: 4,
		Font:        Font{Size: 18, Face: "Arial", Color: "white", StrokeWidth: 3, StrokeColor: "#000000"},
		HasPosition: true,
		Fixed:       true,
	})

	positions := make(map[string][2]float64, len(view.Categories))
	for idx, cat := range view.Categories {
		angle := 2 * math.Pi * float64(idx) / float64(len(view.Categories))
		x := profile.CategoryRadius * math.Cos(angle)
		y := profile.CategoryRadius * math.Sin(angle)
		positions[cat.Name] = [2]float64{x, y}

		g.Nodes = append(g.Nodes, Node{
			ID:          cat.Name,
			Label:       cat.Name,
			Title:       cat.Name,
			Size:        profile.CategorySize,
			Shape:       "dot",
			Color:       Color{Background: cat.Color},
			BorderWidth: 3,
			Font:        Font{Size: 14, Face: "Arial", Color: "white", StrokeWidth: 2, StrokeColor: "#000000"},
			X:           x,
			Y:           y,
			HasPosition: true,
			Fixed:       true,
		})

		g.Edges = append(g.Edges, Edge{
			From:  profile.CentralNode,
			To:    cat.Name,
			Width: 2,
			Color: "rgba(150,150,150,0.8)",
		})

		l.addSpecific(g, profile, cat, x, y)
	}

	l.addCross(g, profile, view.Cross, positions)
	return g
}

func (l NetworkLayout) addSpecific(g *Graph, profile config.VariantProfile, cat CategoryView, x, y float64) {
	idx := 0
	for _, ev := range cat.Entities {
		if ev.Class != domain.CategorySpecific {
			continue
		}

		spiralAngle := 2 * math.Pi * float64(idx) / genesPerSpiralTurn
		distance := 80 + profile.SpiralFactor*float64(idx)*3
		idx++

		g.Nodes = append(g.Nodes, Node{
			ID:          ev.Entity,
			Label:       ev.Entity,
			Title:       fmt.Sprintf("%s<br>PCC: %.3f<br>Tumor: %s", ev.Entity, ev.Score, cat.Name),
			Size:        ev.Attrs.Size,
			Shape:       "dot",
			Color:       Color{Background: cat.Color, Border: cat.Color},
			BorderWidth: 1,
			Font:        Font{Size: 6},
			X:           x + distance*math.Cos(spiralAngle),
			Y:           y + distance*math.Sin(spiralAngle),
			HasPosition: true,
		})

		g.Edges = append(g.Edges, Edge{
			From:    cat.Name,
			To:      ev.Entity,
			Title:   fmt.Sprintf("PCC: %.3f", ev.Score),
			Width:   ev.Attrs.EdgeWidth,
			Color:   cat.Color,
			Opacity: 0.5,
		})
	}
}

// addCross places each cross entity at half its representative category's
// radius with a deterministic per-entity offset, so repeated runs produce an
// identical page.
func (l NetworkLayout) addCross(g *Graph, profile config.VariantProfile, cross []CrossEntity, positions map[string][2]float64) {
	for i, ce := range cross {
		pos, ok := positions[ce.Representative]
		if !ok {
			continue
		}

		offsetX := float64((i*37)%81 - 40)
		offsetY := float64((i*53)%81 - 40)

		main := ce.RepresentativeScore()

		tumors := make([]string, 0, len(ce.Scores))
		details := make([]string, 0, len(ce.Scores))
		for _, cs := range ce.Scores {
			tumors = append(tumors, cs.Category)
			details = append(details, fmt.Sprintf("%s: PCC=%.3f", cs.Category, cs.Score))
		}

		g.Nodes = append(g.Nodes, Node{
			ID:    ce.Entity,
			Label: ce.Entity,
			Title: fmt.Sprintf("%s<br>Cross-tumor gene<br>Exists in: %s<br>%s",
				ce.Entity, strings.Join(tumors, ", "), strings.Join(details, "<br>")),
			Size:        main.Attrs.Size + 2,
			Shape:       "diamond",
			Color:       Color{Background: profile.CrossColor, Border: profile.CrossBorder},
			BorderWidth: 2,
			Font:        Font{Size: 7},
			X:           pos[0]*0.5 + offsetX,
			Y:           pos[1]*0.5 + offsetY,
			HasPosition: true,
		})

		for _, cs := range ce.Scores {
			g.Edges = append(g.Edges, Edge{
				From:    cs.Category,
				To:      ce.Entity,
				Title:   fmt.Sprintf("%s - %s: PCC=%.3f", cs.Category, ce.Entity, cs.Score),
				Width:   cs.Attrs.EdgeWidth,
				Color:   cs.Color,
				Opacity: 0.6,
			})
		}
	}
}
