package model

// Token is one positioned piece of text from PDF extraction, either a
// single glyph or a whole word depending on the source. Top grows
// downward from the top of the page.
type Token struct {
	Text   string
	Left   float64
	Right  float64
	Top    float64
	Height float64
}

// Row is a transient reading-order line: one concatenated string per
// logical column, keyed by column name, plus the line's vertical position.
type Row struct {
	Top     float64
	Columns map[string]string
}

// Col returns the row's text for a column, or "" when absent.
func (r Row) Col(name string) string {
	return r.Columns[name]
}
