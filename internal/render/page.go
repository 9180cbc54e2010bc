package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"TumorNetViz/internal/config"
	"TumorNetViz/internal/domain"
	"TumorNetViz/internal/ports"
	"TumorNetViz/internal/visual"
)

// Correlation coefficients are bounded by 1.0; the mapper interpolates over
// [minScore, maxCorrelation].
const maxCorrelation = 1.0

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
</head>
<body>
<div class="network-container">
<div class="header-container">
<h1 class="main-title">{{.Title}}</h1>
<p class="subtitle">{{.Subtitle}}</p>
</div>
<div id="mynetwork"></div>
</div>
<script type="text/javascript">
var nodes = new vis.DataSet({{.Nodes}});
var edges = new vis.DataSet({{.Edges}});
var container = document.getElementById("mynetwork");
window.network = new vis.Network(container, {nodes: nodes, edges: edges}, {{.Options}});
</script>
</body>
</html>
`))

// Page renders one visualization variant: view assembly, layout, the base
// vis-network document, and the injected legend/control/export chrome.
type Page struct {
	profile config.VariantProfile
	layout  Layout
	mapper  visual.Mapper
	logger  *slog.Logger
}

var _ ports.PageRenderer = (*Page)(nil)

// NewPage binds a variant profile to its layout.
func NewPage(profile config.VariantProfile, layout Layout, minScore float64, log *slog.Logger) *Page {
	return &Page{
		profile: profile,
		layout:  layout,
		mapper:  visual.NewMapper(minScore, maxCorrelation, profile),
		logger:  log,
	}
}

// Name reports the variant name; the pipeline uses it as the output basename.
func (p *Page) Name() string {
	return p.profile.Name
}

// Render produces the complete HTML page for the aggregated membership.
func (p *Page) Render(membership domain.Membership, tables map[string]domain.CategoryTable) (string, error) {
	view := BuildView(p.profile, p.mapper, membership, tables)
	graph := p.layout.Build(p.profile, view)

	if p.logger != nil {
		p.logger.Debug("graph assembled",
			"variant", p.profile.Name,
			"nodes", len(graph.Nodes),
			"edges", len(graph.Edges))
	}

	base, err := p.renderBase(graph)
	if err != nil {
		return "", fmt.Errorf("render base page: %w", err)
	}

	page, err := p.enhance(base, view)
	if err != nil {
		return "", fmt.Errorf("enhance page: %w", err)
	}

	return page, nil
}

func (p *Page) renderBase(graph *Graph) (string, error) {
	nodes, err := json.Marshal(graph.visNodes())
	if err != nil {
		return "", fmt.Errorf("marshal nodes: %w", err)
	}

	edges, err := json.Marshal(graph.visEdges())
	if err != nil {
		return "", fmt.Errorf("marshal edges: %w", err)
	}

	options, err := json.Marshal(p.networkOptions(graph))
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		Title    string
		Subtitle string
		Nodes    template.JS
		Edges    template.JS
		Options  template.JS
	}{
		Title:    p.profile.Title,
		Subtitle: p.profile.Subtitle,
		Nodes:    template.JS(nodes),
		Edges:    template.JS(edges),
		Options:  template.JS(options),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (p *Page) networkOptions(graph *Graph) map[string]any {
	options := map[string]any{
		"interaction": map[string]any{
			"dragNodes":         true,
			"dragView":          true,
			"zoomView":          true,
			"selectable":        true,
			"hover":             true,
			"navigationButtons": true,
		},
	}

	physics := p.profile.Physics
	if physics.Enabled {
		options["physics"] = map[string]any{
			"enabled": true,
			"barnesHut": map[string]any{
				"gravitationalConstant": physics.Gravity,
				"centralGravity":        physics.CentralGravity,
				"springLength":          physics.SpringLength,
				"springConstant":        physics.SpringStrength,
				"damping":               physics.Damping,
				"avoidOverlap":          physics.AvoidOverlap,
			},
			"stabilization": true,
		}
	} else {
		options["physics"] = map[string]any{"enabled": false}
	}

	if graph.Directed {
		options["edges"] = map[string]any{"arrows": "to"}
	}

	return options
}

// enhance parses the base document and injects the stylesheet, legend,
// status indicator, control buttons, and PNG export machinery.
func (p *Page) enhance(base string, view View) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(base))
	if err != nil {
		return "", fmt.Errorf("parse base document: %w", err)
	}

	head := doc.Find("head")
	head.AppendHtml(pageCSS)
	head.AppendHtml(html2canvasTag)

	body := doc.Find("body")
	body.AppendHtml(p.legendHTML(view))
	body.AppendHtml(statusIndicatorHTML)
	body.AppendHtml(controlButtonsHTML)
	body.AppendHtml(downloadButtonsHTML)
	body.AppendHtml(controlScript)
	body.AppendHtml(downloadScript(p.profile.Name))

	html, err := goquery.OuterHtml(doc.Find("html"))
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}

	return "<!DOCTYPE html>\n" + html, nil
}

func (p *Page) legendHTML(view View) string {
	var b strings.Builder

	b.WriteString(`<div class="legend-container"><div class="legend-title">Legend</div>`)
	fmt.Fprintf(&b, `<div class="legend-item"><div class="legend-color" style="background-color: %s;"></div><span>%s (Central)</span></div>`,
		p.profile.CentralColor, p.profile.CentralNode)

	b.WriteString(`<div class="legend-section">Cancer Types:</div>`)
	for _, cat := range view.Categories {
		fmt.Fprintf(&b, `<div class="legend-item"><div class="legend-color" style="background-color: %s;"></div><span>%s</span></div>`,
			cat.Color, cat.Name)
	}

	if len(p.profile.BucketColors) > 0 {
		b.WriteString(`<div class="legend-section">Risk Levels:</div>`)
		fmt.Fprintf(&b, `<div class="legend-item"><div class="legend-color" style="background-color: %s;"></div><span>High Risk (PCC &ge; %.2f)</span></div>`,
			p.profile.BucketColors[string(domain.BucketHigh)], p.profile.Thresholds.High)
		fmt.Fprintf(&b, `<div class="legend-item"><div class="legend-color" style="background-color: %s;"></div><span>Moderate Risk (PCC &ge; %.2f)</span></div>`,
			p.profile.BucketColors[string(domain.BucketModerate)], p.profile.Thresholds.Moderate)
		fmt.Fprintf(&b, `<div class="legend-item"><div class="legend-color" style="background-color: %s;"></div><span>Low Risk</span></div>`,
			p.profile.BucketColors[string(domain.BucketLow)])
	}

	b.WriteString(`<div class="legend-info">`)
	b.WriteString(`<div>Node size: PCC correlation strength</div>`)
	b.WriteString(`<div>Edge width: Connection strength</div>`)
	fmt.Fprintf(&b, `<div>Minimum correlation: %.2f</div>`, p.mapperMin())
	b.WriteString(`<div>Diamond shape: Cross-tumor genes</div>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="legend-controls"><div class="controls-title">Interactive Controls:</div>`)
	b.WriteString(`<div>- Drag nodes to rearrange</div>`)
	b.WriteString(`<div>- Scroll to zoom in/out</div>`)
	b.WriteString(`<div>- Hover over nodes for details</div>`)
	b.WriteString(`<div>- Use buttons below for layout control</div>`)
	b.WriteString(`</div></div>`)

	return b.String()
}

func (p *Page) mapperMin() float64 {
	return p.mapper.MinScore()
}
