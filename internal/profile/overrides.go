package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edocuenta/edocuenta/internal/pipeline"
)

// Overrides is a YAML overlay for a registered profile. Banks reflow
// their layouts every few years; an overlay file adjusts geometry and
// markers without a rebuild.
type Overrides struct {
	Bank string `yaml:"bank"`
	// Variant names the adjusted profile, e.g. "bbva-2019". Empty
	// replaces the base profile in place.
	Variant string `yaml:"variant,omitempty"`

	Bands     []BandOverride `yaml:"bands,omitempty"`
	Edge      string         `yaml:"edge,omitempty"`
	Tolerance float64        `yaml:"tolerance,omitempty"`
	Markers   []string       `yaml:"markers,omitempty"`
}

// BandOverride repositions one column band.
type BandOverride struct {
	Column string  `yaml:"column"`
	Low    float64 `yaml:"low"`
	High   float64 `yaml:"high"`
}

// LoadOverrides reads a profile overlay file from disk.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile overrides: %w", err)
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing profile overrides: %w", err)
	}
	if o.Bank == "" {
		return nil, fmt.Errorf("profile overrides missing bank name")
	}
	return &o, nil
}

// Apply registers the overlaid profile in the registry. The base
// profile must exist and use the columns strategy, which is the only
// one whose geometry drifts.
func (r *Registry) Apply(o *Overrides) error {
	base := r.Get(o.Bank)
	if base == nil {
		return fmt.Errorf("unknown bank %q in profile overrides", o.Bank)
	}
	if base.Strategy != StrategyColumns {
		return fmt.Errorf("bank %q uses strategy %q, overrides only adjust column layouts", o.Bank, base.Strategy)
	}

	p := *base
	spec := *base.Columns
	p.Columns = &spec

	if len(o.Bands) > 0 {
		bands := make([]pipeline.Band, len(o.Bands))
		for i, b := range o.Bands {
			if b.High <= b.Low {
				return fmt.Errorf("band %q: high %v not above low %v", b.Column, b.High, b.Low)
			}
			bands[i] = pipeline.Band{Column: b.Column, Low: b.Low, High: b.High}
		}
		spec.Layout.Bands = bands
	}
	if o.Edge != "" {
		edge, err := parseEdge(o.Edge)
		if err != nil {
			return err
		}
		spec.Layout.Edge = edge
	}
	if o.Tolerance > 0 {
		spec.Grouping = pipeline.Grouping{Tolerance: o.Tolerance}
	}
	if len(o.Markers) > 0 {
		spec.Pages = pipeline.PageSelect{Table: o.Markers}
	}

	if o.Variant == "" {
		r.profiles[strings.ToLower(o.Bank)] = &p
		return nil
	}
	p.Bank = o.Variant
	r.Register(&p)
	return nil
}

func parseEdge(s string) (pipeline.Edge, error) {
	switch s {
	case "right":
		return pipeline.EdgeRight, nil
	case "left":
		return pipeline.EdgeLeft, nil
	case "center":
		return pipeline.EdgeCenter, nil
	}
	return 0, fmt.Errorf("unknown band edge %q", s)
}
