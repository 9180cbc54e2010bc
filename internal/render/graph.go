package render

// Color pairs a node's fill and border.
type Color struct {
	Background string
	Border     string
}

// Font describes node label typography.
type Font struct {
	Size        float64
	Face        string
	Color       string
	StrokeWidth float64
	StrokeColor string
	Bold        bool
}

// Node is one graph element, fully determined before rendering.
type Node struct {
	ID          string
	Label       string
	Title       string
	Size        float64
	Shape       string
	Color       Color
	BorderWidth float64
	Font        Font
	X           float64
	Y           float64
	HasPosition bool
	Fixed       bool
}

// Edge links two nodes with a derived width and color.
type Edge struct {
	From    string
	To      string
	Title   string
	Width   float64
	Color   string
	Opacity float64
}

// Graph is the assembled node/edge set handed to the page template.
type Graph struct {
	Nodes    []Node
	Edges    []Edge
	Directed bool
}

func (n Node) vis() map[string]any {
	m := map[string]any{
		"id":    n.ID,
		"label": n.Label,
		"shape": n.Shape,
		"size":  n.Size,
	}

	if n.Title != "" {
		m["title"] = n.Title
	}

	if n.Color.Border != "" {
		m["color"] = map[string]string{"background": n.Color.Background, "border": n.Color.Border}
	} else {
		m["color"] = n.Color.Background
	}

	if n.BorderWidth > 0 {
		m["borderWidth"] = n.BorderWidth
	}

	if n.Font.Size > 0 {
		font := map[string]any{"size": n.Font.Size}
		if n.Font.Face != "" {
			font["face"] = n.Font.Face
		}
		if n.Font.Color != "" {
			font["color"] = n.Font.Color
		}
		if n.Font.StrokeWidth > 0 {
			font["strokeWidth"] = n.Font.StrokeWidth
			font["strokeColor"] = n.Font.StrokeColor
		}
		if n.Font.Bold {
			font["bold"] = true
		}
		m["font"] = font
	}

	if n.HasPosition {
		m["x"] = n.X
		m["y"] = n.Y
	}

	if n.Fixed {
		m["fixed"] = map[string]bool{"x": true, "y": true}
		m["physics"] = false
	}

	return m
}

func (e Edge) vis() map[string]any {
	m := map[string]any{
		"from":  e.From,
		"to":    e.To,
		"width": e.Width,
	}

	if e.Title != "" {
		m["title"] = e.Title
	}

	if e.Opacity > 0 {
		m["color"] = map[string]any{"color": e.Color, "opacity": e.Opacity}
	} else if e.Color != "" {
		m["color"] = e.Color
	}

	return m
}

func (g *Graph) visNodes() []map[string]any {
	nodes := make([]map[string]any, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, n.vis())
	}
	return nodes
}

func (g *Graph) visEdges() []map[string]any {
	edges := make([]map[string]any, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, e.vis())
	}
	return edges
}
