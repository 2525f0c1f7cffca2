package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

var santanderDate = regexp.MustCompile(`\d{2}-[A-ZÁÉÍÓÚ]{3}-\d{4}`)

// Santander repeats its six-column table header on every transaction
// page, which makes page selection a single marker check.
func Santander() *Profile {
	return &Profile{
		Bank:     "santander",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "fecha", Low: 16, High: 61},
					{Column: "origen", Low: 68, High: 96},
					{Column: "descripcion", Low: 96, High: 326},
					{Column: "deposito", Low: 326, High: 415},
					{Column: "retiro", Low: 415, High: 495},
					{Column: "saldo", Low: 495, High: 577},
				},
			},
			Pages: pipeline.PageSelect{
				Table: []string{"FECHAFOLIODESCRIPCIONDEPOSITOSRETIROSSALDO"},
			},
			First: pipeline.PageRules{
				Start:          []pipeline.RowMatch{{Column: "fecha", Pattern: regexp.MustCompile(`^FECHA$`)}},
				StartInclusive: true,
				Stop: []pipeline.RowMatch{
					{Column: "fecha", Pattern: regexp.MustCompile(`^BANCOSANT`)},
					{Column: "descripcion", Pattern: regexp.MustCompile(`OMUNIQUESUSOBJECIONES`)},
					{Column: "descripcion", Pattern: regexp.MustCompile(`^TOTAL$`)},
				},
				Drop: []pipeline.RowMatch{
					{Column: "descripcion", Pattern: regexp.MustCompile(`SALDOFINALDELPERIODOANTERIOR`)},
				},
			},
			Date:       santanderDate,
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
		Semantics: santanderRules(),
	}
}

// The glyph-collapsed SPEI detail runs phrases together: "ENVIADO A"
// prints as ENVIADOA, "...AL CLIENTE" ends in LCLIENTE, and the concept
// trails a CONCEPTOADM marker.
var (
	santanderParty    = regexp.MustCompile(`LCLIENTE([^(]*)`)
	santanderSent     = regexp.MustCompile(`ENVIADOA([^ ]*)`)
	santanderReceived = regexp.MustCompile(`RECIBIDODE([^ ]*)`)
	santanderConcept  = regexp.MustCompile(`CONCEPTOADM(.*)`)
)

func santanderRules() semantics.Rules {
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Segment: 1, Type: "SPEI"},
			{When: "COM", Segment: 1, Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Segment: 1, Type: "IVACOMISION"},
			{When: "RFC", Segment: 1, Type: "PAGO"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.Capture(0, santanderParty)},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI", Extract: semantics.Capture(0, santanderSent)},
			{When: "SPEI", Extract: semantics.Capture(0, santanderReceived)},
			{Extract: semantics.Literal(semantics.NoValue)},
		},
		Concepts: []semantics.FieldRule{
			{When: "CONCEPTOADM", Extract: semantics.Capture(0, santanderConcept)},
		},
	}
}
