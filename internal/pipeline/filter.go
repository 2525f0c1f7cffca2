package pipeline

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/model"
)

// RowMatch matches a row by a pattern on one of its columns.
type RowMatch struct {
	Column  string
	Pattern *regexp.Regexp
}

// Match reports whether the row's column text matches.
func (m RowMatch) Match(r model.Row) bool {
	return m.Pattern.MatchString(r.Col(m.Column))
}

// PageRules bound the transaction-table region on one page. First, last
// and middle pages of a statement usually carry different boilerplate,
// so a profile supplies one PageRules per page class.
type PageRules struct {
	// Start locates the table's upper boundary. Everything before the
	// first matching row is discarded; the matching row itself is also
	// discarded when StartInclusive is set (header marker rows) and
	// kept otherwise (the first data row itself marks the boundary).
	Start          []RowMatch
	StartInclusive bool
	// StartOnce restricts the Start cut to the first page on which it
	// fires; repeated header text on later pages is then left to Drop
	// rules instead.
	StartOnce bool

	// Stop locates the lower boundary: the first matching row and all
	// rows below it are discarded.
	Stop []RowMatch

	// Drop removes individual noise rows anywhere in the region.
	Drop []RowMatch

	// DropUnmatchedDates removes rows whose date column is non-empty
	// yet does not match the date pattern: footer fragments that leak
	// into the date band.
	DropUnmatchedDates bool
}

// TrimRows restricts one page's rows to the transaction-table region.
func TrimRows(rows []model.Row, rules PageRules, ctx *Context, date *regexp.Regexp, dateCol string) []model.Row {
	start := 0
	if len(rules.Start) > 0 && !(rules.StartOnce && ctx.HeaderSeen) {
		if i, _ := firstMatch(rows, rules.Start); i >= 0 {
			start = i
			if rules.StartInclusive {
				start = i + 1
			}
			ctx.HeaderSeen = true
		}
	}

	end := len(rows)
	if i, _ := firstMatchFrom(rows, rules.Stop, start); i >= 0 && i < end {
		end = i
	}

	out := make([]model.Row, 0, end-start)
	for _, r := range rows[start:end] {
		if matchesAny(r, rules.Drop) {
			continue
		}
		if rules.DropUnmatchedDates && date != nil {
			if d := r.Col(dateCol); d != "" && !date.MatchString(d) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func firstMatch(rows []model.Row, ms []RowMatch) (int, RowMatch) {
	return firstMatchFrom(rows, ms, 0)
}

func firstMatchFrom(rows []model.Row, ms []RowMatch, from int) (int, RowMatch) {
	if len(ms) == 0 {
		return -1, RowMatch{}
	}
	for i := from; i < len(rows); i++ {
		for _, m := range ms {
			if m.Match(rows[i]) {
				return i, m
			}
		}
	}
	return -1, RowMatch{}
}

func matchesAny(r model.Row, ms []RowMatch) bool {
	for _, m := range ms {
		if m.Match(r) {
			return true
		}
	}
	return false
}
