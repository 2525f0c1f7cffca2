package profile

import (
	"regexp"

	"github.com/edocuenta/edocuenta/internal/pipeline"
	"github.com/edocuenta/edocuenta/internal/semantics"
)

var bbvaDate = regexp.MustCompile(`\d{1,2}/[A-ZÁÉÍÓÚ]{3}`)

// BBVA statements print OPER and LIQ date columns, free-form multi-line
// descriptions and a charges/credits pair that occasionally collides
// into one cell.
func BBVA() *Profile {
	return &Profile{
		Bank:     "bbva",
		Strategy: StrategyColumns,
		Columns: &pipeline.Spec{
			Layout: pipeline.Layout{
				Edge: pipeline.EdgeRight,
				Bands: []pipeline.Band{
					{Column: "oper", Low: 0, High: 55},
					{Column: "liq", Low: 55, High: 100},
					{Column: "descripcion", Low: 100, High: 314},
					{Column: "cargo", Low: 314, High: 420},
					{Column: "abono", Low: 420, High: 463},
				},
			},
			// Glyph tops drift within a printed line; a new line only
			// starts once the gap exceeds the glyph height.
			Grouping: pipeline.Grouping{HeightFactor: 1},
			Pages: pipeline.PageSelect{
				First: []string{"DetalledeMovimientosRealizados", "OPERLIQ"},
				Last:  []string{"TotaldeMovimientos", "TOTALMOVIMIENTOSCARGOS"},
			},
			First: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "oper", Pattern: bbvaDate}},
				Drop: []pipeline.RowMatch{
					{Column: "oper", Pattern: regexp.MustCompile(`LaGAT|La GAT`)},
					{Column: "oper", Pattern: regexp.MustCompile(`BBVA\s?M`)},
				},
			},
			Middle: pipeline.PageRules{
				Start:              []pipeline.RowMatch{{Column: "oper", Pattern: bbvaDate}},
				DropUnmatchedDates: true,
			},
			Last: pipeline.PageRules{
				Start: []pipeline.RowMatch{{Column: "oper", Pattern: bbvaDate}},
				Stop:  []pipeline.RowMatch{{Column: "oper", Pattern: regexp.MustCompile(`Total\s?de`)}},
			},
			Date:       bbvaDate,
			DateColumn: "oper",
			Merge: pipeline.MergeSpec{
				DateColumn:  "oper",
				DescColumns: []string{"descripcion"},
				Deposit:     "abono",
				Withdrawal:  "cargo",
				Balance:     "",
			},
			Period:       regexp.MustCompile(`PeriodoDEL\d{2}/\d{2}/(\d{4})`),
			AppendYear:   true,
			YearRollover: true,
		},
		Semantics:       bbvaRules(),
		MergedAmountFix: true,
	}
}

func bbvaRules() semantics.Rules {
	refRun := regexp.MustCompile(`\d{7}`)
	stripRef := func(inner semantics.Extractor) semantics.Extractor {
		return func(segs []string) string {
			return refRun.ReplaceAllString(inner(segs), "")
		}
	}
	return semantics.Rules{
		Types: []semantics.TypeRule{
			{When: "SPEI", Segment: 1, Type: "SPEI"},
			{When: "DEPOSITO", Segment: 1, Type: "DEPOSITO"},
			{When: "PAGO", Segment: 1, Type: "PAGO"},
			{When: "RFC", Type: "COMPRA"},
			{When: "COM", Unless: []string{"IVA"}, Type: "COMISION"},
			{When: "IVA", Type: "IVACOMISION"},
		},
		Parties: []semantics.FieldRule{
			{When: "SPEI", Segment: 1, Extract: semantics.SegFromEnd(0)},
			{When: "RFC", Extract: semantics.Seg(1)},
			{When: "PAGO", Extract: semantics.Capture(0, regexp.MustCompile(`(\w{4} \d{10})`))},
		},
		Institutions: []semantics.FieldRule{
			{When: "SPEI RECIBIDO", Segment: 1, Extract: semantics.After(1, "SPEI RECIBIDO")},
			{When: "SPEI ENVIADO", Segment: 1, Extract: semantics.After(1, "SPEI ENVIADO")},
			{When: "SPEI DEVUELTO", Segment: 1, Extract: semantics.After(1, "SPEI DEVUELTO")},
		},
		Concepts: []semantics.FieldRule{
			{When: "SPEI", Segment: 1, Extract: stripRef(semantics.Seg(2))},
		},
	}
}
