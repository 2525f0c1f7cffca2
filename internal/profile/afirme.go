package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

// Afirme prints only the day number per movement; the month and year
// come from the statement period.
var afirmeDate = regexp.MustCompile(`^\d{2}`)

func Afirme() *Profile {
	return &Profile{
		Bank:     "afirme",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 35, High: 60},
					{Column: "descripcion", Low: 60, High: 287},
					{Column: "origen", Low: 287, High: 340},
					{Column: "deposito", Low: 340, High: 420},
					{Column: "retiro", Low: 420, High: 497},
					{Column: "saldo", Low: 497, High: 578},
				},
			},
			Pages: pipeline.PageSelect{
				Table: []string{"DíaDescripciónReferenciaDepósitosRetirosSaldo"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "fecha", Pattern: afirmeDate}},
				Stop: []pipeline.RowMatch{
					{Column: "descripcion", Pattern: regexp.MustCompile(`Sus\s?ahorros`)},
					{Column: "fecha", Pattern: regexp.MustCompile(`Método`)},
				},
			},
			Date:       afirmeDate,
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
		Semantics: afirmeRules(),
	}
}

func afirmeRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Type: "SPEI"},
			{When: "COM", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
		},
		Parties: []semantics.FieldRule{
			{When: "DESTINATARIO", Extract: semantics.Between(0, "DESTINATARIO:", "CONCEPTO")},
			{When: "EMISOR:", Extract: semantics.Between(0, "EMISOR:", "CONCEPTO")},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.Between(0, "BANCO:", "HORA")},
			{When: "OTRO BANCO", Extract: semantics.Literal("OTRO BANCO")},
			{Extract: semantics.Literal(semantics.NoValue)},
		},
		Concepts: []semantics.FieldRule{
			{When: "CONCEPTO:", Extract: semantics.Between(0, "CONCEPTO:", "HORA")},
		},
	}
}
