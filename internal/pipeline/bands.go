// Package pipeline reconstructs a statement's transaction table from
// positioned text tokens: column classification, row grouping, page
// noise filtering and transaction segmentation. It is fully driven by
// per-bank configuration; no bank names appear in here.
package pipeline

import "github.com/edocuenta/edocuenta/internal/model"

// Edge selects which horizontal coordinate of a token is classified.
// Most layouts were tuned against the right edge of each glyph.
type Edge int

const (
	EdgeRight Edge = iota
	EdgeLeft
	EdgeCenter
)

// Band maps a horizontal coordinate range to a logical column.
type Band struct {
	Column string
	Low    float64
	High   float64
}

// Layout is an ordered, non-overlapping set of column bands.
type Layout struct {
	Bands []Band
	Edge  Edge
}

// Classify assigns a token to a column band, or reports false for
// tokens outside every band (margin decoration, stray marks). Bands are
// half-open [low, high) except the first, which keeps its lower edge
// inclusive as well: [low, high]. Adjacent bands therefore never claim
// the same boundary coordinate.
func (l Layout) Classify(t model.Token) (string, bool) {
	x := l.coordinate(t)
	for i, b := range l.Bands {
		if i == 0 {
			if x >= b.Low && x <= b.High {
				return b.Column, true
			}
			continue
		}
		if x >= b.Low && x < b.High {
			return b.Column, true
		}
	}
	return "", false
}

// Columns returns the band column names in left-to-right order.
func (l Layout) Columns() []string {
	names := make([]string, len(l.Bands))
	for i, b := range l.Bands {
		names[i] = b.Column
	}
	return names
}

func (l Layout) coordinate(t model.Token) float64 {
	switch l.Edge {
	case EdgeLeft:
		return t.Left
	case EdgeCenter:
		return (t.Left + t.Right) / 2
	default:
		return t.Right
	}
}
