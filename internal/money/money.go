// Package money normalizes the monetary strings printed on statements.
// Every bank has its own decoration: currency symbols, thousands
// separators in either locale convention, signs printed before the
// symbol, inside parentheses, or trailing the number.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a raw statement amount into a positive two-decimal
// value plus its printed sign. ok is false for blanks, sentinel dashes
// and anything that does not survive normalization; that is normal
// degraded output, not an error.
//
// The decimal separator is whichever of "." or "," appears right-most,
// so both "1,234.56" and "1.234,56" parse to 1234.56.
func Parse(raw string) (amount decimal.Decimal, negative bool, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return decimal.Decimal{}, false, false
	}

	// Printed sign markers: "(+)"/"(-)" (Azteca), "+$"/"-$" (Nu,
	// MercadoPago), plain leading sign, trailing "-" (BanBajio).
	switch {
	case strings.Contains(s, "(-)"):
		negative = true
		s = strings.Replace(s, "(-)", "", 1)
	case strings.Contains(s, "(+)"):
		s = strings.Replace(s, "(+)", "", 1)
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Decimal{}, false, false
	}
	if s[0] == '+' {
		s = s[1:]
	} else if s[0] == '-' {
		negative = true
		s = s[1:]
	}
	if n := len(s); n > 0 && s[n-1] == '-' {
		negative = true
		s = s[:n-1]
	}
	if s == "" {
		return decimal.Decimal{}, false, false
	}

	s = normalizeSeparators(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false, false
	}
	return d.Round(2), negative, true
}

// normalizeSeparators rewrites the amount with "." as decimal separator
// and no grouping separators.
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	var decSep byte
	switch {
	case lastDot < 0 && lastComma < 0:
		return s
	case lastDot > lastComma:
		decSep = '.'
	default:
		decSep = ','
	}

	sepAt := strings.LastIndexByte(s, decSep)
	// Statements print two decimals. A right-most separator followed by
	// a three-digit group ("50,000") or repeated ("1.234.567") is
	// grouping, not a decimal point.
	if strings.Count(s, string(decSep)) > 1 || len(s)-sepAt-1 == 3 {
		sepAt = -1
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.', ',':
			if i == sepAt {
				b.WriteByte('.')
			}
			// grouping separators are dropped
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
