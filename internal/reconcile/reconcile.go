// Package reconcile resolves movement direction from the running
// balance. Several statement formats print deposits and withdrawals in
// one amount column, or print signs too inconsistently to trust; the
// balance sequence disambiguates them.
package reconcile

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edocuenta/edocuenta/internal/model"
)

// tolerance absorbs rounding noise in printed balances.
var tolerance = decimal.RequireFromString("0.01")

// Keywords backs up the balance check when consecutive balances are
// missing. Matching is case-insensitive on the first description
// segment.
type Keywords struct {
	Deposits    []string
	Withdrawals []string
}

// Resolve fills each movement's deposit or withdrawal column from its
// unsigned amount. The first movement has no previous balance and
// keeps only its balance unless a keyword resolves it; later movements
// compare prev+amount and prev-amount against the printed balance.
// Movements that stay ambiguous keep both columns null.
func Resolve(movs []model.Movement, amounts []decimal.Decimal, kw Keywords) {
	var prev decimal.NullDecimal
	for i := range movs {
		m := &movs[i]
		amt := amounts[i]
		switch {
		case amt.IsZero():
			// Balance-only rows (opening balance lines).
		case prev.Valid && m.Balance.Valid:
			up := prev.Decimal.Add(amt)
			down := prev.Decimal.Sub(amt)
			bal := m.Balance.Decimal
			switch {
			case within(up, bal):
				m.Deposit = nullDec(amt)
			case within(down, bal):
				m.Withdrawal = nullDec(amt)
			default:
				resolveByKeyword(m, amt, kw)
			}
		default:
			resolveByKeyword(m, amt, kw)
		}
		if m.Balance.Valid {
			prev = m.Balance
		}
	}
}

func resolveByKeyword(m *model.Movement, amt decimal.Decimal, kw Keywords) {
	seg := firstSegment(m.Description)
	switch {
	case containsAnyFold(seg, kw.Deposits):
		m.Deposit = nullDec(amt)
	case containsAnyFold(seg, kw.Withdrawals):
		m.Withdrawal = nullDec(amt)
	}
}

// ApplySign places a pre-signed amount directly: negative amounts are
// withdrawals, positive deposits. Formats that print reliable signs
// use this instead of Resolve.
func ApplySign(m *model.Movement, amt decimal.Decimal, negative bool) {
	if negative {
		m.Withdrawal = nullDec(amt)
		return
	}
	m.Deposit = nullDec(amt)
}

// SplitMerged repairs rows where the deposit and withdrawal cells were
// extracted as one concatenated string. The printed balance decides the
// split point: each candidate prefix/suffix pair is parsed and checked
// against prev+dep-wit. Returns the two halves and whether a split
// validated.
func SplitMerged(merged string, prev, bal decimal.Decimal) (deposit, withdrawal string, ok bool) {
	runes := []rune(merged)
	for cut := 1; cut < len(runes); cut++ {
		left := strings.TrimSpace(string(runes[:cut]))
		right := strings.TrimSpace(string(runes[cut:]))
		l, okL := parsePlain(left)
		r, okR := parsePlain(right)
		if !okL || !okR {
			continue
		}
		if within(prev.Add(l).Sub(r), bal) {
			return left, right, true
		}
		if within(prev.Add(r).Sub(l), bal) {
			return right, left, true
		}
	}
	return "", "", false
}

// plainMoney is the printed shape of a statement amount. Candidate
// halves that merely parse as numbers are not enough: a cut one rune
// off still parses but misplaces a digit.
var plainMoney = regexp.MustCompile(`^(?:\d{1,3}(?:,\d{3})*|[1-9]\d*|0)\.\d{2}$`)

func parsePlain(s string) (decimal.Decimal, bool) {
	if !plainMoney.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func within(got, want decimal.Decimal) bool {
	return got.Sub(want).Abs().LessThanOrEqual(tolerance)
}

func nullDec(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func firstSegment(desc string) string {
	for _, seg := range strings.Split(desc, "|") {
		if s := strings.TrimSpace(seg); s != "" {
			return s
		}
	}
	return ""
}

func containsAnyFold(s string, subs []string) bool {
	up := strings.ToUpper(s)
	for _, sub := range subs {
		if sub != "" && strings.Contains(up, strings.ToUpper(sub)) {
			return true
		}
	}
	return false
}
