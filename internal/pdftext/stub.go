package pdftext

import "github.com/edocuenta/edocuenta/internal/model"

// StubDocument is an in-memory Document for tests: synthetic pages with
// hand-placed tokens stand in for real statements.
type StubDocument struct {
	StubPages []*StubPage
	Closed    bool
}

// StubPage is one synthetic page.
type StubPage struct {
	PageText   string
	CharTokens []model.Token
	WordTokens []model.Token
}

func (d *StubDocument) NumPages() int { return len(d.StubPages) }

func (d *StubDocument) Page(n int) Page {
	if n < 1 || n > len(d.StubPages) {
		return emptyPage{}
	}
	return d.StubPages[n-1]
}

func (d *StubDocument) Close() error {
	d.Closed = true
	return nil
}

func (p *StubPage) Text() string         { return p.PageText }
func (p *StubPage) Chars() []model.Token { return p.CharTokens }
func (p *StubPage) Words() []model.Token { return p.WordTokens }
