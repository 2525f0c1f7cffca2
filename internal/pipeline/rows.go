package pipeline

import (
	"math"
	"sort"
	"strings"

	"github.com/edocuenta/edocuenta/internal/model"
)

// Grouping controls how tokens cluster into rows vertically. With both
// fields zero, tokens group on exact (rounded) top positions. Otherwise
// a token starts a new row when its vertical gap from the current row
// exceeds max(Tolerance, HeightFactor × glyph height), which absorbs
// sub-pixel jitter across extraction backends.
type Grouping struct {
	Tolerance    float64 // points
	HeightFactor float64 // fraction of the token's height
}

const exactTopScale = 1e5 // exact mode rounds tops to 5 decimals

type cell struct {
	tok model.Token
	col string
}

// BuildRows classifies tokens into columns and clusters them into
// reading-order rows: sorted top-to-bottom, each row's text assembled
// left-to-right per column. Tokens outside every band are dropped.
func BuildRows(tokens []model.Token, layout Layout, g Grouping) []model.Row {
	cells := make([]cell, 0, len(tokens))
	for _, t := range tokens {
		if col, ok := layout.Classify(t); ok {
			cells = append(cells, cell{tok: t, col: col})
		}
	}
	if len(cells) == 0 {
		return nil
	}

	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].tok.Top != cells[j].tok.Top {
			return cells[i].tok.Top < cells[j].tok.Top
		}
		return cells[i].tok.Left < cells[j].tok.Left
	})

	var rows []model.Row
	var group []cell
	rowTop := cells[0].tok.Top

	flush := func() {
		if len(group) == 0 {
			return
		}
		rows = append(rows, assembleRow(group, layout, rowTop))
		group = group[:0]
	}

	for _, c := range cells {
		if !sameRow(rowTop, c.tok, g) {
			flush()
			rowTop = c.tok.Top
		}
		group = append(group, c)
	}
	flush()
	return rows
}

func sameRow(rowTop float64, t model.Token, g Grouping) bool {
	if g.Tolerance == 0 && g.HeightFactor == 0 {
		return math.Round(rowTop*exactTopScale) == math.Round(t.Top*exactTopScale)
	}
	tol := g.Tolerance
	if h := g.HeightFactor * t.Height; h > tol {
		tol = h
	}
	return t.Top-rowTop <= tol
}

func assembleRow(group []cell, layout Layout, top float64) model.Row {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].tok.Left < group[j].tok.Left
	})
	buf := make(map[string]*strings.Builder, len(layout.Bands))
	for _, c := range group {
		b, ok := buf[c.col]
		if !ok {
			b = &strings.Builder{}
			buf[c.col] = b
		}
		b.WriteString(c.tok.Text)
	}
	cols := make(map[string]string, len(layout.Bands))
	for _, name := range layout.Columns() {
		if b, ok := buf[name]; ok {
			cols[name] = b.String()
		} else {
			cols[name] = ""
		}
	}
	return model.Row{Top: top, Columns: cols}
}
