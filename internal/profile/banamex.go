package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/headerscan"
	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

// Banamex column positions drift between statements, so the profile
// anchors them on the printed RETIROS, DEPOSITOS and SALDO headers
// instead of fixed coordinates.
func Banamex() *Profile {
	return &Profile{
		Bank:     "banamex",
		Strategy: StrategyHeader,
		Header: &headerscan.Spec{
			Anchors: []headerscan.Anchor{
				{Word: "RETIROS", Column: "retiro"},
				{Word: "DEPOSITOS", Column: "deposito"},
				{Word: "SALDO", Column: "saldo"},
			},
			DateColumn: "fecha",
			DescColumn: "descripcion",
			Date:       regexp.MustCompile(`\d{1,2} [A-ZÁÉÍÓÚ]{3}`),
			Slack:      40,
			Stop:       []string{"SALDO MINIMO REQUERIDO"},
			Skip:       []string{"ESTADO DE CUENTA AL", "Página"},
			Merge: pipeline.MergeSpec{
				DateColumn:  "fecha",
				DescColumns: []string{"descripcion"},
				Deposit:     "deposito",
				Withdrawal:  "retiro",
				Balance:     "saldo",
			},
		},
		Semantics: banamexRules(),
	}
}

func banamexRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "DEPOSITO", Type: "DEPOSITO"},
			{When: "PAGO", Type: "PAGO"},
			{When: "COMISION", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.StripDigits(semantics.After(0, "DE LA CUENTA"))},
			{When: "SPEI", Extract: semantics.SegFromEnd(0)},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.Capture(0, regexp.MustCompile(`BANCO:?\s*(\S+)`))},
		},
		Concepts: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.After(0, "CONCEPTO:")},
		},
	}
}
