// Package profile describes how each supported bank prints its
// statement. A profile picks one extraction strategy and carries the
// geometry, markers and semantic rules that drive it.
package profile

import (
	"sort"
	"strings"

	"github.com/edocuenta/edocuenta/internal/headerscan"
	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/reconcile"
	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// Strategy selects the extraction engine for a format.
type Strategy string

const (
	// StrategyColumns classifies characters into fixed x bands.
	StrategyColumns Strategy = "columns"
	// StrategyText scans raw page text with markers and patterns.
	StrategyText Strategy = "text"
	// StrategyHeader measures column positions from the printed
	// header words on each page.
	StrategyHeader Strategy = "header"
)

// Profile is one bank's complete extraction configuration.
type Profile struct {
	Bank     string
	Strategy Strategy

	// Exactly one of these matches Strategy.
	Columns *pipeline.Spec
	Text    *textscan.Spec
	Header  *headerscan.Spec

	Semantics semantics.Rules

	// SignedAmounts marks formats whose single amount column carries a
	// printed sign; the sign decides deposit versus withdrawal.
	SignedAmounts bool
	// Reconcile derives direction from the running balance.
	Reconcile bool
	Keywords  reconcile.Keywords
	// MergedAmountFix repairs rows whose deposit and withdrawal cells
	// were printed flush against each other.
	MergedAmountFix bool
}

// Registry holds named profiles.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry creates an empty profile registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]*Profile)}
}

// Register adds a profile. Panics on duplicate bank name.
func (r *Registry) Register(p *Profile) {
	key := strings.ToLower(p.Bank)
	if _, ok := r.profiles[key]; ok {
		panic("duplicate bank profile: " + key)
	}
	r.profiles[key] = p
}

// Get returns the profile for bank, or nil.
func (r *Registry) Get(bank string) *Profile {
	return r.profiles[strings.ToLower(bank)]
}

// Banks returns the registered bank names, sorted.
func (r *Registry) Banks() []string {
	names := make([]string, 0, len(r.profiles))
	for k := range r.profiles {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Afirme())
	r.Register(Azteca())
	r.Register(Banamex())
	r.Register(BanBajio())
	r.Register(Bancoppel())
	r.Register(Banjercito())
	r.Register(Banorte())
	r.Register(BanRegio())
	r.Register(BBVA())
	r.Register(HSBC())
	r.Register(Inbursa())
	r.Register(MercadoPago())
	r.Register(Nu())
	r.Register(Santander())
	r.Register(Scotiabank())
	return r
}
