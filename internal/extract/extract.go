// Package extract turns a bank statement PDF into normalized
// movements. It resolves the bank's profile, runs the matching
// extraction strategy and applies money parsing, semantic analysis and
// direction reconciliation.
package extract

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edocuenta/edocuenta/internal/headerscan"
	"github.com/edocuenta/edocuenta/internal/model"
	"github.com/edocuenta/edocuenta/internal/money"
	"github.com/edocuenta/edocuenta/internal/pdftext"
	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/profile"
	"github.com/edocuenta/edocuenta/internal/reconcile"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// ErrNoData reports that no movements could be extracted: the document
// is not a statement of the requested bank, or its layout has drifted
// past the profile.
var ErrNoData = errors.New("no movements extracted from document")

// Statement extracts all movements from the PDF at path using the
// built-in profile for bank.
func Statement(path, bank string) ([]model.Movement, error) {
	return StatementFrom(profile.DefaultRegistry(), path, bank)
}

// StatementFrom is Statement with a caller-supplied registry, for
// variant profiles loaded from overlay files.
func StatementFrom(reg *profile.Registry, path, bank string) ([]model.Movement, error) {
	p := reg.Get(bank)
	if p == nil {
		return nil, fmt.Errorf("no profile for bank %q", bank)
	}
	doc, err := pdftext.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer doc.Close()
	return FromDocument(doc, p)
}

// FromDocument extracts movements from an already-open document.
func FromDocument(doc pdftext.Document, p *profile.Profile) ([]model.Movement, error) {
	raws, err := runStrategy(doc, p)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoTable) ||
			errors.Is(err, textscan.ErrNoTable) ||
			errors.Is(err, headerscan.ErrNoHeader) {
			return nil, fmt.Errorf("%w: %v", ErrNoData, err)
		}
		return nil, err
	}
	if p.MergedAmountFix {
		repairMergedAmounts(raws)
	}

	movs := make([]model.Movement, 0, len(raws))
	amounts := make([]decimal.Decimal, 0, len(raws))
	for _, raw := range raws {
		m := model.Movement{
			Date:        raw.Date,
			Description: raw.Description,
		}
		if d, _, ok := money.Parse(raw.Deposit); ok {
			m.Deposit = decimal.NullDecimal{Decimal: d, Valid: true}
		}
		if w, _, ok := money.Parse(raw.Withdrawal); ok {
			m.Withdrawal = decimal.NullDecimal{Decimal: w, Valid: true}
		}
		if b, neg, ok := money.Parse(raw.Balance); ok {
			if neg {
				b = b.Neg()
			}
			m.Balance = decimal.NullDecimal{Decimal: b, Valid: true}
		}

		amt := decimal.Zero
		if a, neg, ok := money.Parse(raw.Amount); ok {
			if p.SignedAmounts {
				reconcile.ApplySign(&m, a, neg)
			} else {
				amt = a
			}
		}
		amounts = append(amounts, amt)

		f := p.Semantics.Apply(raw.Description)
		m.Type = f.Type
		m.Counterparty = f.Party
		m.CounterpartyBank = f.Institution
		m.Concept = f.Concept

		movs = append(movs, m)
	}

	if p.Reconcile {
		reconcile.Resolve(movs, amounts, p.Keywords)
	}

	for _, m := range movs {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	if len(movs) == 0 {
		return nil, ErrNoData
	}
	return movs, nil
}

func runStrategy(doc pdftext.Document, p *profile.Profile) ([]model.RawMovement, error) {
	switch p.Strategy {
	case profile.StrategyColumns:
		return pipeline.Run(doc, *p.Columns)
	case profile.StrategyText:
		return textscan.Run(doc, *p.Text)
	case profile.StrategyHeader:
		return headerscan.Run(doc, *p.Header)
	}
	return nil, fmt.Errorf("profile %q has unknown strategy %q", p.Bank, p.Strategy)
}

// repairMergedAmounts fixes rows whose single printed amount straddled
// the deposit/withdrawal band boundary and was split across both cells.
// With consecutive balances the true split is recoverable; without
// them the halves rejoin as one credit, matching how these rows print.
func repairMergedAmounts(raws []model.RawMovement) {
	var prev decimal.Decimal
	havePrev := false
	for i := range raws {
		r := &raws[i]
		bal, _, balOK := money.Parse(r.Balance)

		_, _, depOK := money.Parse(r.Deposit)
		_, _, witOK := money.Parse(r.Withdrawal)
		if depOK && witOK {
			split := false
			if havePrev && balOK {
				if dep, wit, ok := reconcile.SplitMerged(r.Withdrawal+r.Deposit, prev, bal); ok {
					r.Deposit = dep
					r.Withdrawal = wit
					split = true
				}
			}
			if !split {
				r.Deposit = r.Withdrawal + r.Deposit
				r.Withdrawal = ""
			}
		}

		if balOK {
			prev = bal
			havePrev = true
		}
	}
}
