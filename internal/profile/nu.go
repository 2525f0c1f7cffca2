package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// Nu statements carry no running balance; every amount prints with an
// explicit sign.
func Nu() *Profile {
	return &Profile{
		Bank:     "nu",
		Strategy: StrategyText,
		Text: &textscan.Spec{
			Begin:   regexp.MustCompile(`FECHA DEL \d{2} AL \d{2} [A-Z]{3} \d{4} \(\d{2} DÍAS\) MONTO EN PESOS MEXICANOS`),
			End:     regexp.MustCompile(`Con estos movimientos, tu saldo promedio del periodo fue de [+-]?\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
			Date:    regexp.MustCompile(`\d{2} [A-Z]{3} \d{4}`),
			Amounts: textscan.AmountsSigned,
			Money:   regexp.MustCompile(`[+-]?\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
		},
		Semantics:     nuRules(),
		SignedAmounts: true,
	}
}

func nuRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "Transferencia recibida", Type: "DEPOSITO_TERCEROS"},
			{When: "Transferencia enviada", Type: "TRANSFERENCIA_SALIDA"},
			{When: "Pago de", Type: "PAGO"},
			{When: "Compra", Type: "COMPRA"},
		},
		Parties: []semantics.FieldRule{
			{When: "Transferencia recibida", Extract: semantics.After(0, "recibida de")},
			{When: "Transferencia enviada", Extract: semantics.After(0, "enviada a")},
		},
	}
}
