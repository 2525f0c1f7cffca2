package pipeline

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/edocuenta/edocuenta/internal/model"
	"github.com/edocuenta/edocuenta/internal/pdftext"
)

// ErrNoTable reports that no page of the document matched the table
// markers: either the wrong bank profile was chosen or the layout has
// drifted past recognition.
var ErrNoTable = errors.New("no page matched the transaction table markers")

// PageSelect decides which pages carry transaction rows. Markers are
// substrings of the page text with newlines and spaces collapsed, the
// way repeated header phrases survive extraction-order jitter.
type PageSelect struct {
	// Table marks any transaction page (formats whose table header
	// repeats on every page). All listed markers must appear.
	Table []string
	// First and Last mark the boundary pages of formats whose table
	// spans pages without repeating its header; in-between pages are
	// treated as table pages while inside the span.
	First []string
	Last  []string
}

// Spec is the full configuration of one geometric statement layout.
type Spec struct {
	Layout   Layout
	Grouping Grouping
	// UseWords classifies word tokens instead of single glyphs.
	UseWords bool

	Pages  PageSelect
	First  PageRules
	Middle PageRules
	Last   PageRules

	// Shift, when set, repairs rows split off their movement by
	// vertical drift after the page is trimmed.
	Shift *ShiftSpec

	Date       *regexp.Regexp
	DateColumn string
	Merge      MergeSpec

	// Period captures the statement period's four- or two-digit start
	// year in group 1, matched against collapsed page text.
	Period *regexp.Regexp
	// AppendYear completes partial dates ("02/ENE") with the period
	// year; December entries keep the start year while later months
	// roll into the next one.
	AppendYear   bool
	YearRollover bool
}

// Run walks the document page by page and reconstructs the merged
// transaction rows. Numeric parsing, semantics and sign inference are
// later stages; Run deals purely in text.
func Run(doc pdftext.Document, spec Spec) ([]model.RawMovement, error) {
	ctx := &Context{}
	var all []model.Row
	matched := false

	for n := 1; n <= doc.NumPages(); n++ {
		page := doc.Page(n)
		text := Collapse(page.Text())

		if ctx.Year == 0 && spec.Period != nil {
			if m := spec.Period.FindStringSubmatch(text); m != nil {
				ctx.Year = parseYear(m[1])
			}
		}

		rules, process, lastPage := selectPage(spec, ctx, text)
		if !process {
			continue
		}
		matched = true

		tokens := page.Chars()
		if spec.UseWords {
			tokens = page.Words()
		}
		rows := BuildRows(tokens, spec.Layout, spec.Grouping)
		rows = TrimRows(rows, rules, ctx, spec.Date, spec.DateColumn)
		if spec.Shift != nil {
			rows = ShiftRows(rows, *spec.Shift)
		}
		all = append(all, rows...)

		if lastPage {
			break
		}
	}

	if !matched {
		return nil, ErrNoTable
	}

	groups := Segment(all, spec.DateColumn, spec.Date)
	raws := make([]model.RawMovement, 0, len(groups))
	for _, g := range groups {
		raws = append(raws, Merge(g, spec.Merge))
	}
	if spec.AppendYear {
		annotateYears(raws, ctx.Year, spec.YearRollover)
	}
	return raws, nil
}

// selectPage classifies one page against the profile's markers and
// picks the rule set for it.
func selectPage(spec Spec, ctx *Context, text string) (rules PageRules, process, last bool) {
	if len(spec.Pages.First) > 0 {
		switch {
		case !ctx.InTable && containsAll(text, spec.Pages.First):
			ctx.InTable = true
			return spec.First, true, false
		case ctx.InTable && len(spec.Pages.Last) > 0 && containsAll(text, spec.Pages.Last):
			ctx.InTable = false
			return spec.Last, true, true
		case ctx.InTable:
			return spec.Middle, true, false
		}
		return PageRules{}, false, false
	}
	if containsAll(text, spec.Pages.Table) {
		return spec.First, true, false
	}
	return PageRules{}, false, false
}

// Collapse strips newlines and spaces so marker phrases match no matter
// how the extractor split them.
func Collapse(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	return strings.ReplaceAll(text, " ", "")
}

func containsAll(text string, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	for _, m := range markers {
		if !strings.Contains(text, m) {
			return false
		}
	}
	return true
}

func parseYear(s string) int {
	year, err := strconv.Atoi(s)
	if err != nil || year <= 0 {
		return 0
	}
	if year < 100 {
		year += 2000
	}
	return year
}

var monthRe = regexp.MustCompile(`[A-ZÁÉÍÓÚ]{3}`)

// annotateYears completes day/month dates with the statement year. A
// statement starting in December spans the year boundary: December
// entries keep the start year, anything else is the following year.
func annotateYears(raws []model.RawMovement, year int, rollover bool) {
	if year == 0 {
		return
	}
	crossesYear := false
	if rollover && len(raws) > 0 {
		crossesYear = monthRe.FindString(raws[0].Date) == "DIC"
	}
	for i := range raws {
		if raws[i].Date == "" {
			continue
		}
		y := year
		if crossesYear && monthRe.FindString(raws[i].Date) != "DIC" {
			y++
		}
		raws[i].Date = raws[i].Date + "/" + strconv.Itoa(y)
	}
}
