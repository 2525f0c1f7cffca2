package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

var banregioDate = regexp.MustCompile(`^\d{2}`)

// BanRegio glyph tops wobble within a row, so rows group with a height
// tolerance instead of exact coordinates.
func BanRegio() *Profile {
	return &Profile{
		Bank:     "banregio",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 34, High: 50},
					{Column: "descripcion", Low: 50, High: 341},
					{Column: "retiro", Low: 341, High: 420},
					{Column: "deposito", Low: 420, High: 500},
					{Column: "saldo", Low: 500, High: 577},
				},
			},
			Grouping: pipeline.Grouping{Tolerance: 1.5},
			Pages: pipeline.PageSelect{
				Table: []string{"DIACONCEPTOCARGOSABONOSSALDO"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "fecha", Pattern: banregioDate}},
				Stop:  []pipeline.RowMatch{{Column: "saldo", Pattern: regexp.MustCompile(`Page`)}},
			},
			Date:       banregioDate,
			DateColumn: "fecha",
			Merge: pipeline.MergeSpec{
				DateColumn:  "fecha",
				DescColumns: []string{"descripcion"},
				Deposit:     "deposito",
				Withdrawal:  "retiro",
				Balance:     "saldo",
			},
		},
		Semantics: banregioRules(),
	}
}

func banregioRules() semantics.Rules {
	notFees := []string{"IVA", "COMISION"}
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Unless: []string{"IVA", "COM."}, Type: "SPEI"},
			{When: "TRASPASO", Unless: []string{"COM."}, Type: "TRASPASO"},
			{When: "omision", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
			{When: "RFC", Type: "COMPRA"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI", Unless: notFees, Extract: semantics.SegFromEnd(0)},
			{When: "TRASPASO", Extract: semantics.Seg(2)},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI", Unless: notFees, Extract: semantics.Seg(2)},
			{When: "TRASPASO", Extract: semantics.Literal("BANREGIO")},
		},
		Concepts: []semantics.FieldRule{
			{When: "SPEI", Unless: notFees, Extract: semantics.Seg(3)},
		},
	}
}
