package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// Azteca prints one movement per line with a parenthesized sign:
// "(+) $50,000.00".
func Azteca() *Profile {
	return &Profile{
		Bank:     "azteca",
		Strategy: StrategyText,
		Text: &textscan.Spec{
			Date:     regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`),
			LineMode: true,
			Amounts:  textscan.AmountsSigned,
			Money:    regexp.MustCompile(`\(\s*[+-]\s*\)\s*\$\s*(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d{2})?`),
		},
		Semantics:     aztecaRules(),
		SignedAmounts: true,
	}
}

func aztecaRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "DEPOSITO", Type: "DEPOSITO"},
			{When: "RETIRO", Type: "RETIRO_EFECTIVO"},
			{When: "PAGO", Type: "PAGO"},
		},
	}
}
