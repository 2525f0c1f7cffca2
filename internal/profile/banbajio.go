package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/semantics"
	"github.com/edocuenta/edocuenta/internal/textscan"
)

// BanBajio amounts print as "$"-prefixed fields at the end of each
// movement, with a trailing minus on withdrawals.
func BanBajio() *Profile {
	return &Profile{
		Bank:     "banbajio",
		Strategy: StrategyText,
		Text: &textscan.Spec{
			Begin:   regexp.MustCompile(`FECHA DESCRIPCION DE LA OPERACION`),
			End:     regexp.MustCompile(`TOTAL DE MOVIMIENTOS EN EL PERIODO|SALDO TOTAL\*|RESUMEN DEL PERIODO`),
			Date:    regexp.MustCompile(`\d{1,2} [A-ZÁÉÍÓÚ]{3}`),
			Amounts: textscan.AmountsCurrencySplit,
			Strip: []*regexp.Regexp{
				regexp.MustCompile(`CONTINUA EN LA SIGUIENTE PAGINA`),
				regexp.MustCompile(`\b\d{7,}\b`),
			},
		},
		Semantics:     banBajioRules(),
		SignedAmounts: true,
	}
}

func banBajioRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Unless: []string{"COMISION", "IVA"}, Type: "SPEI"},
			{When: "COMISION", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
			{When: "COMPRA-DISPOSICION", Type: "COMPRA"},
			{When: "PAGO", Type: "PAGO"},
		},
		Parties: []semantics.FieldRule{
			{When: "BENEFICIARIO:", Extract: semantics.Between(0, "BENEFICIARIO:", "SPEI:")},
			{When: "ORDENANTE:", Extract: semantics.Between(0, "ORDENANTE:", "SPEI:")},
			{When: "COMPRA-DISPOSICION", Extract: semantics.After(0, "COMPRA-DISPOSICION")},
		},
		Institutions: []semantics.FieldRule{
			{When: "ENVÍO SPEI", Extract: semantics.Between(0, "ENVÍO SPEI", "BENEFICIARIO")},
			{When: "DEPÓSITO SPEI:", Extract: semantics.Between(0, "DEPÓSITO SPEI:", "ORDENANTE")},
		},
		Concepts: []semantics.FieldRule{
			{When: "SPEI:", Extract: semantics.After(0, "SPEI:")},
		},
	}
}
