package pipeline

import "github.com/edocuenta/edocuenta/internal/model"

// ShiftSpec repairs rows that vertical drift split off from their
// movement: an amounts-only row printed just above its dated row, or a
// dated row whose description landed on the line above.
type ShiftSpec struct {
	DateColumn   string
	DescColumn   string
	OriginColumn string
	// Amounts are the columns carried down from a stray amounts-only
	// row into the dated row below it.
	Amounts []string
}

// ShiftRows applies two passes. First, a row with neither date nor
// description donates its amount columns to the following row and is
// removed. Second, a dated row with an origin but no description pulls
// the description from the row above it, which is removed.
func ShiftRows(rows []model.Row, s ShiftSpec) []model.Row {
	out := make([]model.Row, 0, len(rows))
	for i, r := range rows {
		if r.Col(s.DateColumn) == "" && r.Col(s.DescColumn) == "" && i+1 < len(rows) {
			for _, col := range s.Amounts {
				if v := r.Col(col); v != "" {
					rows[i+1].Columns[col] = v
				}
			}
			continue
		}
		out = append(out, r)
	}

	folded := out
	out = make([]model.Row, 0, len(folded))
	for i, r := range folded {
		if r.Col(s.DateColumn) != "" && r.Col(s.DescColumn) == "" && r.Col(s.OriginColumn) != "" && i > 0 {
			if n := len(out); n > 0 {
				r.Columns[s.DescColumn] = out[n-1].Col(s.DescColumn)
				out = out[:n-1]
			}
		}
		out = append(out, r)
	}
	return out
}
