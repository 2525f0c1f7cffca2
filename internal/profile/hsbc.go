package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/reconcile"
	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// HSBC bounds its table between the "Abono Saldo" header and the CoDI
// section; amounts print unsigned next to the balance.
func HSBC() *Profile {
	return &Profile{
		Bank:     "hsbc",
		Strategy: StrategyText,
		Text: &textscan.Spec{
			Begin:   regexp.MustCompile(`(?i)Abono\s+Saldo`),
			End:     regexp.MustCompile(`(?i)CoDI`),
			Date:    regexp.MustCompile(`\d{2} [A-ZÁÉÍÓÚ]{3}`),
			Amounts: textscan.AmountsTrailingPair,
			Money:   regexp.MustCompile(`(?:[1-9]\d{0,2}(?:,\d{3})*|\d)\.\d{2}`),
			Strip: []*regexp.Regexp{
				regexp.MustCompile(`\d{8}`),
				regexp.MustCompile(`\$`),
			},
		},
		Semantics: hsbcRules(),
		Reconcile: true,
		Keywords: reconcile.Keywords{
			Deposits:    []string{"ABONO", "DEPOSITO", "SPEI RECIBIDO"},
			Withdrawals: []string{"CARGO", "RETIRO", "COMPRA", "PAGO"},
		},
	}
}

func hsbcRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "COMPRA", Type: "COMPRA"},
			{When: "PAGO", Type: "PAGO"},
			{When: "COMISION", Type: "COMISION"},
		},
	}
}
