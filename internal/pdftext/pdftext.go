// Package pdftext wraps PDF text extraction behind a small interface so
// the parsing pipeline never touches the PDF library directly. The
// concrete implementation is github.com/ledongthuc/pdf; anything that
// yields per-glyph geometry and page text can stand in.
package pdftext

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/edocuenta/edocuenta/internal/model"
)

// Document is one open statement PDF.
type Document interface {
	NumPages() int
	// Page returns the 1-based page. Pages that cannot be decoded come
	// back empty rather than failing the whole statement.
	Page(n int) Page
	Close() error
}

// Page exposes the three views the pipeline consumes: raw text,
// character tokens and word tokens.
type Page interface {
	Text() string
	Chars() []model.Token
	Words() []model.Token
}

// letterHeight is the fallback page height when the MediaBox is absent
// (US Letter, in points).
const letterHeight = 792.0

// File is a Document backed by a PDF on disk.
type File struct {
	f *os.File
	r *pdf.Reader
}

// Open opens a statement PDF for extraction.
func Open(path string) (*File, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{f: f, r: r}, nil
}

// NumPages returns the page count.
func (d *File) NumPages() int { return d.r.NumPage() }

// Page returns the 1-based page n.
func (d *File) Page(n int) Page {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return emptyPage{}
	}
	return &filePage{p: p, height: pageHeight(p)}
}

// Close releases the underlying file.
func (d *File) Close() error { return d.f.Close() }

type filePage struct {
	p      pdf.Page
	height float64
}

// Text returns the page's plain text. The library's font-aware path is
// tried first; on failure the text is rebuilt from positioned glyphs.
func (p *filePage) Text() string {
	fonts := make(map[string]*pdf.Font)
	for _, name := range p.p.Fonts() {
		f := p.p.Font(name)
		fonts[name] = &f
	}
	if text, err := p.p.GetPlainText(fonts); err == nil && strings.TrimSpace(text) != "" {
		return text
	}
	return textFromChars(p.Chars())
}

// Chars returns one token per text object, in content order. The
// library's Y grows upward; tokens are flipped to top-down coordinates.
func (p *filePage) Chars() []model.Token {
	content := p.p.Content()
	toks := make([]model.Token, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		toks = append(toks, model.Token{
			Text:   t.S,
			Left:   t.X,
			Right:  t.X + t.W,
			Top:    p.height - t.Y,
			Height: t.FontSize,
		})
	}
	return toks
}

// Words returns word-level tokens using the library's row grouping.
func (p *filePage) Words() []model.Token {
	rows, err := p.p.GetTextByRow()
	if err != nil {
		return nil
	}
	var toks []model.Token
	for _, row := range rows {
		for _, w := range row.Content {
			if strings.TrimSpace(w.S) == "" {
				continue
			}
			toks = append(toks, model.Token{
				Text:   w.S,
				Left:   w.X,
				Right:  w.X + w.W,
				Top:    p.height - w.Y,
				Height: w.FontSize,
			})
		}
	}
	return toks
}

func pageHeight(p pdf.Page) float64 {
	mb := p.V.Key("MediaBox")
	if mb.IsNull() || mb.Len() < 4 {
		return letterHeight
	}
	h := mb.Index(3).Float64() - mb.Index(1).Float64()
	if h <= 0 {
		return letterHeight
	}
	return h
}

// textFromChars rebuilds readable page text by grouping glyphs into
// lines on their rounded vertical position.
func textFromChars(toks []model.Token) string {
	if len(toks) == 0 {
		return ""
	}
	lines := make(map[int][]model.Token)
	for _, t := range toks {
		key := int(math.Round(t.Top))
		lines[key] = append(lines[key], t)
	}
	keys := make([]int, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var b strings.Builder
	for i, k := range keys {
		line := lines[k]
		sort.Slice(line, func(a, b int) bool { return line[a].Left < line[b].Left })
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, t := range line {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

type emptyPage struct{}

func (emptyPage) Text() string         { return "" }
func (emptyPage) Chars() []model.Token { return nil }
func (emptyPage) Words() []model.Token { return nil }
