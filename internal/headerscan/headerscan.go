// Package headerscan classifies statement tokens against columns whose
// positions drift between documents. Instead of fixed bands it locates
// the printed header words on each page and anchors the columns on
// their measured centers.
package headerscan

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/edocuenta/edocuenta/internal/model"
	"github.com/edocuenta/edocuenta/internal/pdftext"
	"github.com/edocuenta/edocuenta/internal/pipeline"
)

// ErrNoHeader reports that no page carried the expected header words.
var ErrNoHeader = errors.New("no page matched the table header words")

// Anchor names one header word and the column it pins down.
type Anchor struct {
	// Word is the printed header text, matched case-insensitively on
	// the word token.
	Word string
	// Column is the logical column keyed by this word.
	Column string
}

// Spec configures a header-anchored scan.
type Spec struct {
	// Anchors name the amount columns. All must appear on one text row
	// for it to count as the header.
	Anchors []Anchor
	// DateColumn and DescColumn receive the tokens left of the first
	// anchored column. Tokens matching Date stay in DateColumn.
	DateColumn string
	DescColumn string
	Date       *regexp.Regexp
	// Slack widens each anchored column to the left, in points. Amount
	// digits print right-aligned under the header so the column spans
	// from (center left by Slack) to the midpoint with the next anchor.
	Slack float64
	// Stop phrases terminate the scan when a reconstructed row starts
	// with one of them.
	Stop []string
	// Skip phrases drop individual rows (page furniture repeated
	// inside the table).
	Skip []string

	Grouping pipeline.Grouping
	Merge    pipeline.MergeSpec
}

// header holds the measured geometry of one page's column headers.
type header struct {
	top     float64
	centers []anchorAt
}

type anchorAt struct {
	column string
	center float64
}

// Run scans the document, finds the header words on each page and
// reconstructs transaction blocks from the rows below them.
func Run(doc pdftext.Document, spec Spec) ([]model.RawMovement, error) {
	var rows []model.Row
	found := false

	for n := 1; n <= doc.NumPages(); n++ {
		words := doc.Page(n).Words()
		hdr, ok := findHeader(words, spec.Anchors)
		if !ok {
			continue
		}
		found = true

		layout := hdr.layout(spec)
		pageRows := pipeline.BuildRows(below(words, hdr.top), layout, spec.Grouping)
		stop := false
		for _, r := range pageRows {
			lead := strings.TrimSpace(r.Col(spec.DateColumn) + " " + r.Col(spec.DescColumn))
			if startsWithAny(lead, spec.Stop) {
				stop = true
				break
			}
			if startsWithAny(lead, spec.Skip) {
				continue
			}
			rows = append(rows, splitDate(r, spec))
		}
		if stop {
			break
		}
	}

	if !found {
		return nil, ErrNoHeader
	}

	groups := pipeline.Segment(rows, spec.DateColumn, spec.Date)
	raws := make([]model.RawMovement, 0, len(groups))
	for _, g := range groups {
		raws = append(raws, pipeline.Merge(g, spec.Merge))
	}
	return raws, nil
}

// findHeader looks for a text row containing every anchor word and
// returns the word centers keyed by column.
func findHeader(words []model.Token, anchors []Anchor) (header, bool) {
	byTop := map[float64][]model.Token{}
	for _, w := range words {
		key := math.Round(w.Top)
		byTop[key] = append(byTop[key], w)
	}
	tops := make([]float64, 0, len(byTop))
	for top := range byTop {
		tops = append(tops, top)
	}
	sort.Float64s(tops)
	for _, top := range tops {
		line := byTop[top]
		centers := make([]anchorAt, 0, len(anchors))
		for _, a := range anchors {
			c, ok := wordCenter(line, a.Word)
			if !ok {
				break
			}
			centers = append(centers, anchorAt{column: a.Column, center: c})
		}
		if len(centers) == len(anchors) {
			sort.Slice(centers, func(i, j int) bool { return centers[i].center < centers[j].center })
			return header{top: top, centers: centers}, true
		}
	}
	return header{}, false
}

func wordCenter(line []model.Token, word string) (float64, bool) {
	for _, t := range line {
		if strings.EqualFold(strings.TrimSpace(t.Text), word) {
			return (t.Left + t.Right) / 2, true
		}
	}
	return 0, false
}

// layout translates the measured centers into column bands. Everything
// left of the first anchored column belongs to the description; date
// tokens are peeled off afterwards by splitDate.
func (h header) layout(spec Spec) pipeline.Layout {
	first := h.centers[0].center - spec.Slack
	bands := []pipeline.Band{{Column: spec.DescColumn, Low: 0, High: first}}
	for i, c := range h.centers {
		high := math.Inf(1)
		if i+1 < len(h.centers) {
			high = (c.center + h.centers[i+1].center) / 2
		}
		low := c.center - spec.Slack
		if i > 0 {
			low = (h.centers[i-1].center + c.center) / 2
		}
		bands = append(bands, pipeline.Band{Column: c.column, Low: low, High: high})
	}
	return pipeline.Layout{Bands: bands, Edge: pipeline.EdgeCenter}
}

// splitDate moves a leading date match out of the description column.
func splitDate(r model.Row, spec Spec) model.Row {
	desc := r.Col(spec.DescColumn)
	if m := spec.Date.FindStringIndex(desc); m != nil && m[0] == 0 {
		r.Columns[spec.DateColumn] = strings.TrimSpace(desc[:m[1]])
		r.Columns[spec.DescColumn] = strings.TrimSpace(desc[m[1]:])
	}
	return r
}

func below(words []model.Token, top float64) []model.Token {
	out := make([]model.Token, 0, len(words))
	for _, w := range words {
		if w.Top > top+0.5 {
			out = append(out, w)
		}
	}
	return out
}

func startsWithAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
