package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/reconcile"
	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// Bancoppel prints unsigned amounts next to the running balance; the
// balance sequence decides direction.
func Bancoppel() *Profile {
	return &Profile{
		Bank:     "bancoppel",
		Strategy: StrategyText,
		Text: &textscan.Spec{
			Contains: regexp.MustCompile(`Detalle de Movimientos`),
			Date:     regexp.MustCompile(`^\d{2}/\d{2}`),
			LineMode: true,
			Amounts:  textscan.AmountsTrailingPair,
		},
		Semantics: bancoppelRules(),
		Reconcile: true,
		Keywords: reconcile.Keywords{
			Deposits:    []string{"DEPOSITO", "ABONO", "SPEI RECIBIDO"},
			Withdrawals: []string{"RETIRO", "CARGO", "COMPRA", "PAGO"},
		},
	}
}

func bancoppelRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "DEPOSITO", Type: "DEPOSITO"},
			{When: "RETIRO", Type: "RETIRO_EFECTIVO"},
			{When: "COMPRA", Type: "COMPRA"},
		},
	}
}
