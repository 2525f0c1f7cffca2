package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

// Inbursa prints month first: "ENE 15".
var inbursaDate = regexp.MustCompile(`[A-ZÁÉÍÓÚ]{3}\s?\d{2}`)

func Inbursa() *Profile {
	return &Profile{
		Bank:     "inbursa",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 13, High: 47},
					{Column: "origen", Low: 47, High: 106},
					{Column: "descripcion", Low: 106, High: 366},
					{Column: "retiro", Low: 366, High: 430},
					{Column: "deposito", Low: 430, High: 496},
					{Column: "saldo", Low: 496, High: 566},
				},
			},
			Pages: pipeline.PageSelect{
				Table: []string{"FECHAREFERENCIACONCEPTOCARGOSABONOSSALDO"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "fecha", Pattern: inbursaDate}},
				Drop: []pipeline.RowMatch{
					{Column: "descripcion", Pattern: regexp.MustCompile(`BALANCE\s?INICIAL`)},
				},
			},
			// Amount cells drift a line off their movement often enough
			// that the stray rows have to be folded back in.
			Shift: &pipeline.ShiftSpec{
				DateColumn:   "fecha",
				DescColumn:   "descripcion",
				OriginColumn: "origen",
				Amounts:      []string{"retiro", "deposito", "saldo"},
			},
			Date:       inbursaDate,
			DateColumn: "fecha",
			Merge: pipeline.MergeSpec{
				DateColumn:   "fecha",
				OriginColumn: "origen",
				DescColumns:  []string{"descripcion"},
				Deposit:      "deposito",
				Withdrawal:   "retiro",
				Balance:      "saldo",
			},
		},
		Semantics: inbursaRules(),
	}
}

func inbursaRules() semantics.Rules {
	speiLike := "SPEI"
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: speiLike, Unless: []string{"IVA", "COMISION"}, Type: "SPEI"},
			{When: "COMISION SPEI", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
			{When: "MX", Type: "COMPRA"},
		},
		Parties: []semantics.FieldRule{
			{When: "TRANSFERENCIA SPEI", Extract: semantics.SegFromEnd(0)},
			{When: "DEPOSITO SPEI", Extract: semantics.SegFromEnd(0)},
		},
		Institutions: []semantics.FieldRule{
			{When: "TRANSFERENCIA SPEI", Extract: semantics.Seg(2)},
			{When: "DEPOSITO SPEI", Extract: semantics.Seg(2)},
			{Extract: semantics.Literal(semantics.NoValue)},
		},
		Concepts: []semantics.FieldRule{
			{When: "TRANSFERENCIA SPEI", Extract: semantics.Seg(3)},
			{When: "DEPOSITO SPEI", Extract: semantics.Seg(3)},
		},
	}
}
