// Package semantics derives business fields from a movement's
// description: the movement type, the counterparty, the counterparty
// institution and the transfer concept. Each statement format carries
// its own ordered rule tables; the first matching rule wins.
package semantics

import (
	"regexp"
	"strings"
)

// Defaults for fields no rule could produce. Statements mark a missing
// counterparty institution with the "Sin contraparte" sentinel; the
// other fields fall back to a plain dash.
const (
	NoCounterparty = "Sin contraparte"
	NoValue        = "-"
	TypeOther      = "OTRO"
)

// Fields is the semantic output for one movement.
type Fields struct {
	Type        string
	Party       string
	Institution string
	Concept     string
}

// Extractor pulls one field value out of the description segments.
// Empty return means the rule produced nothing and the default stands.
type Extractor func(segs []string) string

// TypeRule assigns a movement type when its conditions hold.
type TypeRule struct {
	// When must appear in the inspected segment. Empty matches always.
	When string
	// Unless vetoes the rule when present in the segment.
	Unless []string
	// Segment selects which pipe segment is inspected. Zero means the
	// whole description.
	Segment int
	Type    string
}

// FieldRule extracts a field value when its conditions hold.
type FieldRule struct {
	When    string
	Unless  []string
	Segment int
	Extract Extractor
}

// Rules is one format's full semantic rule set.
type Rules struct {
	Types        []TypeRule
	Parties      []FieldRule
	Institutions []FieldRule
	Concepts     []FieldRule
}

// Apply runs the rule tables over a pipe-joined description. The
// leading pipe makes segment 1 the first printed line.
func (r Rules) Apply(description string) Fields {
	segs := strings.Split(description, "|")
	f := Fields{
		Type:        TypeOther,
		Party:       NoValue,
		Institution: NoCounterparty,
		Concept:     NoValue,
	}
	for _, tr := range r.Types {
		if matches(segs, tr.Segment, tr.When, tr.Unless) {
			f.Type = tr.Type
			break
		}
	}
	f.Party = applyField(segs, r.Parties, f.Party)
	f.Institution = applyField(segs, r.Institutions, f.Institution)
	f.Concept = applyField(segs, r.Concepts, f.Concept)
	return f
}

func applyField(segs []string, rules []FieldRule, def string) string {
	for _, fr := range rules {
		if !matches(segs, fr.Segment, fr.When, fr.Unless) {
			continue
		}
		if v := strings.TrimSpace(fr.Extract(segs)); v != "" {
			return v
		}
	}
	return def
}

func matches(segs []string, segment int, when string, unless []string) bool {
	s := pick(segs, segment)
	if when != "" && !strings.Contains(s, when) {
		return false
	}
	for _, u := range unless {
		if u != "" && strings.Contains(s, u) {
			return false
		}
	}
	return true
}

// pick returns the inspected text: segment n, or the whole joined
// description when n is zero or out of range.
func pick(segs []string, n int) string {
	if n > 0 && n < len(segs) {
		return segs[n]
	}
	return strings.Join(segs, " ")
}

// Seg returns pipe segment n verbatim.
func Seg(n int) Extractor {
	return func(segs []string) string {
		if n > 0 && n < len(segs) {
			return strings.TrimSpace(segs[n])
		}
		return ""
	}
}

// SegFromEnd returns the n-th segment counting back from the last.
// SegFromEnd(0) is the final segment.
func SegFromEnd(n int) Extractor {
	return func(segs []string) string {
		i := len(segs) - 1 - n
		if i < 1 {
			return ""
		}
		return strings.TrimSpace(segs[i])
	}
}

// After returns the text following the first occurrence of marker in
// segment n.
func After(n int, marker string) Extractor {
	return func(segs []string) string {
		s := Seg(n)(segs)
		i := strings.Index(s, marker)
		if i < 0 {
			return ""
		}
		return strings.TrimSpace(s[i+len(marker):])
	}
}

// Between returns the text between from and to in segment n. A missing
// to takes the rest of the segment.
func Between(n int, from, to string) Extractor {
	return func(segs []string) string {
		s := After(n, from)(segs)
		if s == "" {
			return ""
		}
		if j := strings.Index(s, to); j >= 0 {
			s = s[:j]
		}
		return strings.TrimSpace(s)
	}
}

// Capture returns group 1 of the pattern applied to segment n, or to
// the whole description when n is zero.
func Capture(n int, pattern *regexp.Regexp) Extractor {
	return func(segs []string) string {
		m := pattern.FindStringSubmatch(pick(segs, n))
		if len(m) < 2 {
			return ""
		}
		return strings.TrimSpace(m[1])
	}
}

// StripDigits removes digit runs and collapses spacing, for name
// fields printed with account fragments embedded.
func StripDigits(inner Extractor) Extractor {
	digits := regexp.MustCompile(`\d+`)
	return func(segs []string) string {
		s := digits.ReplaceAllString(inner(segs), " ")
		return strings.Join(strings.Fields(s), " ")
	}
}

// Literal always yields the given value. Useful with When conditions
// that pin down an institution or concept without extraction.
func Literal(v string) Extractor {
	return func([]string) string { return v }
}
