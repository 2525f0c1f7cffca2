package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

var banjercitoDate = regexp.MustCompile(`^\d{1,2}\s?\d{1,2}$`)

// Banjercito column bounds come from the header rectangles of the
// "DETALLE DE MOVIMIENTOS" table and are measured on left edges.
func Banjercito() *Profile {
	return &Profile{
		Bank:     "banjercito",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeLeft,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 28, High: 56},
					{Column: "registro", Low: 56, High: 83},
					{Column: "descripcion", Low: 83, High: 253},
					{Column: "usuario", Low: 253, High: 304},
					{Column: "origen", Low: 304, High: 367},
					{Column: "retiro", Low: 367, High: 441},
					{Column: "deposito", Low: 441, High: 516},
					{Column: "saldo", Low: 516, High: 590},
				},
			},
			Grouping: pipeline.Grouping{Tolerance: 1.5},
			UseWords: true,
			Pages: pipeline.PageSelect{
				Table: []string{"DETALLEDEMOVIMIENTOS"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "fecha", Pattern: banjercitoDate}},
				Drop: []pipeline.RowMatch{
					{Column: "descripcion", Pattern: regexp.MustCompile(`Concepto`)},
					{Column: "fecha", Pattern: regexp.MustCompile(`Día`)},
					{Column: "deposito", Pattern: regexp.MustCompile(`SALDO`)},
				},
			},
			Date:       banjercitoDate,
			DateColumn: "fecha",
			Merge: pipeline.MergeSpec{
				DateColumn:   "fecha",
				OriginColumn: "origen",
				DescColumns:  []string{"descripcion"},
				Deposit:      "deposito",
				Withdrawal:   "retiro",
				Balance:      "saldo",
			},
			Period:     regexp.MustCompile(`FechadeCorte\.?:?\d{1,2}[A-Za-z]+(\d{4})`),
			AppendYear: true,
		},
		Semantics: banjercitoRules(),
	}
}

func banjercitoRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "COMISION", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
			{When: "CAJERO", Type: "RETIRO_EFECTIVO"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.SegFromEnd(0)},
		},
	}
}
