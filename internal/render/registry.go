package render

import (
	"fmt"

	"TumorNetViz/internal/config"
)

// Layout positions categories and entities for one visualization style.
type Layout interface {
	Name() string
	Build(profile config.VariantProfile, view View) *Graph
}

// Registry keeps a mapping from layout names to their implementations.
type Registry struct {
	layouts map[string]Layout
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{layouts: map[string]Layout{}}
}

// Register adds or replaces a layout implementation.
func (r *Registry) Register(layout Layout) {
	if r.layouts == nil {
		r.layouts = map[string]Layout{}
	}
	r.layouts[layout.Name()] = layout
}

// Resolve returns a layout by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Layout, error) {
	if layout, ok := r.layouts[name]; ok {
		return layout, nil
	}
	return nil, fmt.Errorf("layout %s is not registered", name)
}
