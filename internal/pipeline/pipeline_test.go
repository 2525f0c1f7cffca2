package pipeline

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edocuenta/edocuenta/internal/model"
	"github.com/edocuenta/edocuenta/internal/pdftext"
)

// statementSpec is a minimal single-amount-column format used by the
// end-to-end tests.
func statementSpec() Spec {
	return Spec{
		Layout: Layout{
			Edge: EdgeRight,
			Bands: []Band{
				{Column: "fecha", Low: 16, High: 90},
				{Column: "descripcion", Low: 90, High: 326},
				{Column: "deposito", Low: 326, High: 415},
				{Column: "retiro", Low: 415, High: 495},
				{Column: "saldo", Low: 495, High: 577},
			},
		},
		Pages: PageSelect{Table: []string{"FECHADESCRIPCIONDEPOSITOSRETIROSSALDO"}},
		First: PageRules{
			Start:          []RowMatch{{Column: "fecha", Pattern: regexp.MustCompile(`^FECHA$`)}},
			StartInclusive: true,
			Stop:           []RowMatch{{Column: "descripcion", Pattern: regexp.MustCompile(`TOTALDEMOVIMIENTOS|TOTAL DE MOVIMIENTOS`)}},
		},
		Date:       regexp.MustCompile(`^\d{2}/[A-Z]{3}/\d{4}`),
		DateColumn: "fecha",
		Merge: MergeSpec{
			DateColumn:  "fecha",
			DescColumns: []string{"descripcion"},
			Deposit:     "deposito",
			Withdrawal:  "retiro",
			Balance:     "saldo",
		},
	}
}

// statementPage typesets rows of (fecha, descripcion, deposito, retiro,
// saldo) text at the band positions.
func statementPage(lines [][5]string) *pdftext.StubPage {
	xs := [5]float64{20, 100, 340, 430, 500}
	var toks []model.Token
	text := ""
	for i, line := range lines {
		top := 50 + float64(i)*12
		for c, cellText := range line {
			toks = append(toks, chars(cellText, xs[c], top)...)
			text += cellText + " "
		}
		text += "\n"
	}
	return &pdftext.StubPage{PageText: text, CharTokens: toks}
}

func TestRun_EndToEnd(t *testing.T) {
	page := statementPage([][5]string{
		{"", "ESTADO DE CUENTA", "", "", ""},
		{"FECHA", "DESCRIPCION", "DEPOSITOS", "RETIROS", "SALDO"},
		{"01/ENE/2024", "PAGO PROVEEDOR", "-", "-", "1,000.00"},
		{"05/ENE/2024", "DEPOSITO CLIENTE", "500.00", "-", "1,500.00"},
		{"", "TOTAL DE MOVIMIENTOS", "", "", ""},
		{"", "AVISO LEGAL", "", "", ""},
	})
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{page}}

	raws, err := Run(doc, statementSpec())
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "01/ENE/2024", raws[0].Date)
	assert.Equal(t, "|PAGOPROVEEDOR", raws[0].Description)
	assert.Equal(t, "-", raws[0].Deposit)
	assert.Equal(t, "1,000.00", raws[0].Balance)

	assert.Equal(t, "05/ENE/2024", raws[1].Date)
	assert.Equal(t, "500.00", raws[1].Deposit)
	assert.Equal(t, "-", raws[1].Withdrawal)
	assert.Equal(t, "1,500.00", raws[1].Balance)
}

func TestRun_MultiPageWithContinuations(t *testing.T) {
	page1 := statementPage([][5]string{
		{"FECHA", "DESCRIPCION", "DEPOSITOS", "RETIROS", "SALDO"},
		{"01/ENE/2024", "SPEI RECIBIDO", "750.00", "-", "1,750.00"},
		{"", "BANCO EMISOR SA", "", "", ""},
	})
	page2 := statementPage([][5]string{
		{"FECHA", "DESCRIPCION", "DEPOSITOS", "RETIROS", "SALDO"},
		{"", "CONCEPTO RENTA", "", "", ""},
		{"02/ENE/2024", "COMISION", "-", "10.00", "1,740.00"},
	})
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{page1, page2}}

	raws, err := Run(doc, statementSpec())
	require.NoError(t, err)
	require.Len(t, raws, 2)
	// The continuation rows, including the one on the following page,
	// belong to the first transaction.
	assert.Equal(t, "|SPEIRECIBIDO|BANCOEMISORSA|CONCEPTORENTA", raws[0].Description)
	assert.Equal(t, "10.00", raws[1].Withdrawal)
}

func TestRun_NoTableMarker(t *testing.T) {
	page := statementPage([][5]string{{"", "DOCUMENTO CUALQUIERA", "", "", ""}})
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{page}}

	_, err := Run(doc, statementSpec())
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestRun_YearAnnotation(t *testing.T) {
	spec := statementSpec()
	spec.Date = regexp.MustCompile(`^\d{2}/[A-Z]{3}`)
	spec.Period = regexp.MustCompile(`PeriodoDEL\d{2}/\d{2}/(\d{4})`)
	spec.AppendYear = true
	spec.YearRollover = true

	page := statementPage([][5]string{
		{"", "Periodo DEL 01/12/2023 AL 31/12/2023", "", "", ""},
		{"FECHA", "DESCRIPCION", "DEPOSITOS", "RETIROS", "SALDO"},
		{"28/DIC", "CARGO", "-", "20.00", "980.00"},
		{"02/ENE", "ABONO", "40.00", "-", "1,020.00"},
		{"", "TOTAL DE MOVIMIENTOS", "", "", ""},
	})
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{page}}

	raws, err := Run(doc, spec)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "28/DIC/2023", raws[0].Date, "December stays in the period start year")
	assert.Equal(t, "02/ENE/2024", raws[1].Date, "January rolls into the next year")
}
