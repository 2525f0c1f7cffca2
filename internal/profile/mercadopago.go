package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// MercadoPago closes every movement block with its commission line, so
// blocks end on that trailer rather than the next date.
func MercadoPago() *Profile {
	return &Profile{
		Bank:     "mercadopago",
		Strategy: StrategyText,
		Text: &textscan.Spec{
			Contains: regexp.MustCompile(`DETALLE DE MOVIMIENTOS Período`),
			Date:     regexp.MustCompile(`\d{2}/[a-zA-Z]{3}/\d{4}`),
			BlockEnd: regexp.MustCompile(`Comisión\s+\d+\.\d{2}`),
			Amounts:  textscan.AmountsSigned,
			Money:    regexp.MustCompile(`[+-]\$\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
			Strip: []*regexp.Regexp{
				regexp.MustCompile(`\d{2}:\d{2}:\d{2}`),
			},
		},
		Semantics:     mercadoPagoRules(),
		SignedAmounts: true,
	}
}

func mercadoPagoRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "Transferencia recibida", Type: "DEPOSITO_TERCEROS"},
			{When: "Transferencia enviada", Type: "TRANSFERENCIA_SALIDA"},
			{When: "Pago", Type: "PAGO"},
			{When: "Rendimientos", Type: "RENDIMIENTO"},
		},
		Parties: []semantics.FieldRule{
			{When: "Transferencia", Extract: semantics.Between(0, "Transferencia recibida de", "Comisión")},
			{When: "Transferencia", Extract: semantics.Between(0, "Transferencia enviada a", "Comisión")},
		},
	}
}
