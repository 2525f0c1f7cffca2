package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

var scotiabankDate = regexp.MustCompile(`\d{2}\s?[A-ZÁÉÍÓÚ]{3}`)

func Scotiabank() *Profile {
	return &Profile{
		Bank:     "scotiabank",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 47, High: 91},
					{Column: "descripcion", Low: 91, High: 252},
					{Column: "origen", Low: 252, High: 378},
					{Column: "deposito", Low: 378, High: 440},
					{Column: "retiro", Low: 440, High: 513},
					{Column: "saldo", Low: 513, High: 587},
				},
			},
			Pages: pipeline.PageSelect{
				Table: []string{"FechaConceptoOrigen"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "fecha", Pattern: scotiabankDate}},
				Stop:  []pipeline.RowMatch{{Column: "fecha", Pattern: regexp.MustCompile(`LAS\s*TAS`)}},
			},
			Date:       scotiabankDate,
			DateColumn: "fecha",
			Merge: pipeline.MergeSpec{
				DateColumn:   "fecha",
				OriginColumn: "origen",
				DescColumns:  []string{"descripcion"},
				Deposit:      "deposito",
				Withdrawal:   "retiro",
				Balance:      "saldo",
			},
			Period:     regexp.MustCompile(`Periodo[^0-9]*\d{2}-[A-Za-z]{3}-(\d{2})`),
			AppendYear: false,
		},
		Semantics: scotiabankRules(),
	}
}

func scotiabankRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "COMISION", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
			{When: "RFC", Type: "COMPRA"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.SegFromEnd(0)},
			{When: "RFC", Extract: semantics.Seg(1)},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.Seg(2)},
		},
		Concepts: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.Seg(3)},
		},
	}
}
