package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RawMovement is one statement line item as assembled from the page,
// before any numeric parsing. Description holds every physical source
// line, pipe-separated, in reading order.
type RawMovement struct {
	Date        string
	Origin      string
	Description string
	Deposit     string
	Withdrawal  string
	Amount      string // single-amount formats; may carry an explicit sign
	Balance     string
}

// Segments splits the pipe-joined description back into its physical
// source lines. The leading separator produces an empty first element,
// mirroring how the lines were joined; callers index from 1 for the
// first printed line.
func (r RawMovement) Segments() []string {
	return splitPipes(r.Description)
}

// Movement is a fully normalized statement line item.
type Movement struct {
	Date             string              `csv:"fecha"`
	Description      string              `csv:"descripcion"`
	Deposit          decimal.NullDecimal `csv:"deposito"`
	Withdrawal       decimal.NullDecimal `csv:"retiro"`
	Balance          decimal.NullDecimal `csv:"saldo"`
	Type             string              `csv:"tipo_movimiento"`
	Counterparty     string              `csv:"contraparte"`
	CounterpartyBank string              `csv:"institucion_contraparte"`
	Concept          string              `csv:"concepto_movimiento"`
}

// Validate checks the deposit/withdrawal exclusivity invariant: a single
// movement is either money in or money out, never both.
func (m Movement) Validate() error {
	if m.Deposit.Valid && m.Withdrawal.Valid {
		return fmt.Errorf("movement %q on %s has both deposit and withdrawal", m.Description, m.Date)
	}
	return nil
}

func splitPipes(s string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	return append(segs, s[start:])
}
