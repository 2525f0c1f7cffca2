package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

var banorteDate = regexp.MustCompile(`\d{2}-[A-ZÁÉÍÓÚ]{3}-\d{2}`)

func Banorte() *Profile {
	return &Profile{
		Bank:     "banorte",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 50, High: 85},
					{Column: "descripcion", Low: 85, High: 351},
					{Column: "deposito", Low: 351, High: 420},
					{Column: "retiro", Low: 420, High: 490},
					{Column: "saldo", Low: 490, High: 560},
				},
			},
			Pages: pipeline.PageSelect{
				Table: []string{"FECHADESCRIPCIÓN/ESTABLECIMIENTO"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "fecha", Pattern: banorteDate}},
				Stop:  []pipeline.RowMatch{{Column: "fecha", Pattern: regexp.MustCompile(`Directa`)}},
				Drop: []pipeline.RowMatch{
					{Column: "descripcion", Pattern: regexp.MustCompile(`SALDO\s?ANTERIOR`)},
				},
			},
			Date:       banorteDate,
			DateColumn: "fecha",
			Merge: pipeline.MergeSpec{
				DateColumn:  "fecha",
				DescColumns: []string{"descripcion"},
				Deposit:     "deposito",
				Withdrawal:  "retiro",
				Balance:     "saldo",
			},
		},
		Semantics: banorteRules(),
	}
}

func banorteRules() semantics.Rules {
	ivaComision := []string{"COMISION", "I.V.A"}
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Unless: []string{"I.V.A"}, Type: "SPEI"},
			{When: "COMISION", Unless: []string{"I.V.A"}, Type: "COMISION"},
			{When: "I.V.A", Type: "IVACOMISION"},
			{When: "RFC", Type: "COMPRA"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI RECIBIDO", Extract: semantics.After(0, "ORDENANTE:")},
			{When: "PAGO SPEI", Unless: ivaComision, Extract: semantics.After(0, "BENEFICIARIO:")},
			{When: "RFC", Unless: []string{"SPEI RECIBIDO", "PAGO SPEI"}, Extract: semantics.Seg(1)},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI RECIBIDO", Extract: semantics.Capture(0, regexp.MustCompile(`BCO:\d{4}\s*(\S+)`))},
			{When: "PAGO SPEI", Unless: ivaComision, Extract: semantics.Capture(0, regexp.MustCompile(`BANCO:\s*(\S+)`))},
		},
		Concepts: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.After(0, "CONCEPTO:")},
		},
	}
}
