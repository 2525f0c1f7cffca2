// Package textscan extracts transactions from statement formats whose
// layout is too fluid for fixed column bands. It works on raw page
// text: marker-delimited table regions, date-anchored block
// segmentation and pattern-based amount capture.
package textscan

import (
	"errors"
	"regexp"
	"strings"

	"github.com/edocuenta/edocuenta/internal/model"
	"github.com/edocuenta/edocuenta/internal/pdftext"
)

// ErrNoTable reports that no page carried the table region markers.
var ErrNoTable = errors.New("no page matched the transaction table markers")

// Amounts selects how monetary values are recovered from a block.
type Amounts int

const (
	// AmountsSigned takes the first money token carrying an explicit
	// printed sign ("+$75.00", "(-) $1,500.00").
	AmountsSigned Amounts = iota
	// AmountsTrailingPair takes the last two plain money tokens as
	// unsigned amount and running balance, in that order. A block with
	// a single money token has only a balance.
	AmountsTrailingPair
	// AmountsCurrencySplit splits the block on "$": the last piece is
	// the balance, the one before it the unsigned amount. A trailing
	// "-" on the amount carries the sign (some formats print it after
	// the number).
	AmountsCurrencySplit
)

// Spec is the full configuration of one text-mode statement layout.
type Spec struct {
	// Contains gates pages: only pages whose text matches are scanned.
	// Nil means every page between Begin and End.
	Contains *regexp.Regexp
	// Begin marks the start of the table region the first time it
	// matches; text before it on that page is discarded. Nil means the
	// region starts with the first gated page.
	Begin *regexp.Regexp
	// End terminates the whole scan when it matches.
	End *regexp.Regexp

	// Date anchors a new transaction block.
	Date *regexp.Regexp
	// BlockEnd optionally closes a block early (formats that print a
	// fixed trailer per movement); otherwise a block runs to the next
	// date match.
	BlockEnd *regexp.Regexp
	// LineMode treats each text line as its own candidate block.
	LineMode bool

	Amounts Amounts
	Money   *regexp.Regexp
	// Strip patterns are removed from the description (times, page
	// numbers, the captured amounts themselves).
	Strip []*regexp.Regexp
}

// money matches a plain decimal amount with optional grouping.
var money = regexp.MustCompile(`(?:\d{1,3}(?:,\d{3})*|\d+)\.\d{2}-?`)

// signedMoney matches an amount with an explicit printed sign.
var signedMoney = regexp.MustCompile(`(?:[+-]\s*\$|\(\s*[+-]\s*\)\s*\$?)\s*(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d{2})?`)

// Run scans the document's page text and emits raw movements. The
// geometry pipeline and this scanner produce the same shape, so the
// downstream stages are shared.
func Run(doc pdftext.Document, spec Spec) ([]model.RawMovement, error) {
	var raws []model.RawMovement
	inTable := spec.Begin == nil
	matched := false

	for n := 1; n <= doc.NumPages(); n++ {
		text := doc.Page(n).Text()
		if text == "" {
			continue
		}
		if spec.Contains != nil && !spec.Contains.MatchString(text) {
			if spec.Begin == nil {
				continue
			}
			if !inTable {
				continue
			}
		}

		if spec.Begin != nil && !inTable {
			m := spec.Begin.FindStringIndex(text)
			if m == nil {
				continue
			}
			inTable = true
			text = text[m[1]:]
		}
		if spec.Contains != nil && spec.Contains.MatchString(text) {
			matched = true
		} else if inTable {
			matched = true
		}

		done := false
		if spec.End != nil {
			if m := spec.End.FindStringIndex(text); m != nil {
				text = text[:m[0]]
				done = true
			}
		}

		if spec.LineMode {
			raws = append(raws, scanLines(text, spec)...)
		} else {
			raws = append(raws, scanBlocks(text, spec)...)
		}
		if done {
			break
		}
	}

	if !matched {
		return nil, ErrNoTable
	}
	return raws, nil
}

// scanBlocks cuts the region into blocks anchored on date matches and
// converts each into a raw movement.
func scanBlocks(text string, spec Spec) []model.RawMovement {
	anchors := spec.Date.FindAllStringIndex(text, -1)
	var raws []model.RawMovement
	for i, a := range anchors {
		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1][0]
		}
		block := text[a[0]:end]
		if spec.BlockEnd != nil {
			if m := spec.BlockEnd.FindStringIndex(block); m != nil {
				block = block[:m[1]]
			}
		}
		if raw, ok := scanBlock(block, spec); ok {
			raws = append(raws, raw)
		}
	}
	return raws
}

func scanLines(text string, spec Spec) []model.RawMovement {
	var raws []model.RawMovement
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !spec.Date.MatchString(line) {
			continue
		}
		if raw, ok := scanBlock(line, spec); ok {
			raws = append(raws, raw)
		}
	}
	return raws
}

// scanBlock extracts date, amounts and the cleaned description from one
// block of text.
func scanBlock(block string, spec Spec) (model.RawMovement, bool) {
	flat := strings.ReplaceAll(block, "\n", " ")
	date := spec.Date.FindString(flat)
	if date == "" {
		return model.RawMovement{}, false
	}

	raw := model.RawMovement{Date: strings.TrimSpace(date)}
	desc := flat

	switch spec.Amounts {
	case AmountsSigned:
		pat := spec.Money
		if pat == nil {
			pat = signedMoney
		}
		if m := pat.FindString(flat); m != "" {
			raw.Amount = m
		}
		desc = pat.ReplaceAllString(desc, "")
	case AmountsTrailingPair:
		pat := spec.Money
		if pat == nil {
			pat = money
		}
		ms := pat.FindAllString(flat, -1)
		switch {
		case len(ms) >= 2:
			raw.Amount = ms[len(ms)-2]
			raw.Balance = ms[len(ms)-1]
		case len(ms) == 1:
			raw.Balance = ms[0]
		}
		desc = pat.ReplaceAllString(desc, "")
	case AmountsCurrencySplit:
		var rest string
		rest, raw.Amount, raw.Balance = currencySplit(flat)
		desc = rest
	}

	desc = spec.Date.ReplaceAllString(desc, "")
	for _, s := range spec.Strip {
		desc = s.ReplaceAllString(desc, "")
	}
	raw.Description = strings.Join(strings.Fields(desc), " ")
	return raw, true
}

// currencySplit recovers (description, amount, balance) from a block
// where amounts are the last "$"-prefixed fields. A single "$" field is
// a balance-only line (opening balance rows). The amount's trailing "-"
// moves onto the balance delta downstream, so it is preserved.
func currencySplit(s string) (rest, amount, balance string) {
	parts := strings.Split(s, "$")
	switch len(parts) {
	case 1:
		return s, "", ""
	case 2:
		return parts[0], "", strings.TrimSpace(parts[1])
	default:
		rest = strings.Join(parts[:len(parts)-2], "$")
		amount = strings.TrimSpace(parts[len(parts)-2])
		balance = strings.TrimSpace(parts[len(parts)-1])
		return rest, amount, balance
	}
}
