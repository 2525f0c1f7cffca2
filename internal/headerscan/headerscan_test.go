package headerscan

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edocuenta/edocuenta/internal/model"
	"github.com/edocuenta/edocuenta/internal/pdftext"
	"github.com/edocuenta/edocuenta/internal/pipeline"
)

func word(text string, left, right, top float64) model.Token {
	return model.Token{Text: text, Left: left, Right: right, Top: top, Height: 8}
}

func testSpec() Spec {
	return Spec{
		Anchors: []Anchor{
			{Word: "RETIROS", Column: "retiro"},
			{Word: "DEPOSITOS", Column: "deposito"},
			{Word: "SALDO", Column: "saldo"},
		},
		DateColumn: "fecha",
		DescColumn: "descripcion",
		Date:       regexp.MustCompile(`\d{2} [A-Z]{3}`),
		Slack:      40,
		Stop:       []string{"SALDO MINIMO REQUERIDO"},
		Skip:       []string{"DETALLE DE OPERACIONES"},
		Merge: pipeline.MergeSpec{
			DateColumn:  "fecha",
			DescColumns: []string{"descripcion"},
			Deposit:     "deposito",
			Withdrawal:  "retiro",
			Balance:     "saldo",
		},
	}
}

// headerAt lays out the three header words around the given centers.
func headerAt(top float64, retiros, depositos, saldo float64) []model.Token {
	return []model.Token{
		word("RETIROS", retiros-20, retiros+20, top),
		word("DEPOSITOS", depositos-25, depositos+25, top),
		word("SALDO", saldo-15, saldo+15, top),
	}
}

func TestFindHeader_TopmostCandidateWins(t *testing.T) {
	// A summary block lower on the page repeats every anchor word; the
	// table header is the first line carrying them all.
	words := headerAt(100, 350, 440, 530)
	words = append(words, headerAt(600, 340, 430, 520)...)

	hdr, ok := findHeader(words, testSpec().Anchors)
	require.True(t, ok)
	assert.Equal(t, 100.0, hdr.top)
}

func TestRun_AnchorsColumnsOnHeaderWords(t *testing.T) {
	words := headerAt(100, 350, 440, 530)
	words = append(words,
		word("02 FEB COMPRA SUPER", 20, 200, 120),
		word("250.00", 330, 352, 120),
		word("9,750.00", 505, 532, 120),
		word("05 FEB DEPOSITO SPEI", 20, 205, 140),
		word("1,000.00", 415, 442, 140),
		word("10,750.00", 503, 532, 140),
	)
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{{WordTokens: words}}}

	raws, err := Run(doc, testSpec())
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "02 FEB", raws[0].Date)
	assert.Equal(t, "|COMPRA SUPER", raws[0].Description)
	assert.Equal(t, "250.00", raws[0].Withdrawal)
	assert.Empty(t, raws[0].Deposit)
	assert.Equal(t, "9,750.00", raws[0].Balance)

	assert.Equal(t, "1,000.00", raws[1].Deposit)
	assert.Empty(t, raws[1].Withdrawal)
	assert.Equal(t, "10,750.00", raws[1].Balance)
}

func TestRun_HeaderDriftBetweenPages(t *testing.T) {
	page1 := append(headerAt(100, 350, 440, 530),
		word("02 FEB PAGO LUZ", 20, 180, 120),
		word("300.00", 330, 352, 120),
		word("9,700.00", 505, 532, 120),
	)
	// Shifted 30pt right on the second page.
	page2 := append(headerAt(80, 380, 470, 560),
		word("REFERENCIA 778899", 20, 160, 100),
		word("09 FEB ABONO NOMINA", 20, 200, 120),
		word("4,000.00", 445, 472, 120),
		word("13,700.00", 533, 562, 120),
	)
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{
		{WordTokens: page1},
		{WordTokens: page2},
	}}

	raws, err := Run(doc, testSpec())
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "300.00", raws[0].Withdrawal)
	assert.Equal(t, "4,000.00", raws[1].Deposit)
	assert.Equal(t, "13,700.00", raws[1].Balance)
}

func TestRun_ContinuationRowsJoinBlock(t *testing.T) {
	words := append(headerAt(100, 350, 440, 530),
		word("02 FEB SPEI ENVIADO", 20, 190, 120),
		word("750.00", 330, 352, 120),
		word("9,250.00", 505, 532, 120),
		word("BANCO RECEPTOR BBVA", 20, 210, 135),
		word("CLAVE DE RASTREO 0042", 20, 215, 150),
	)
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{{WordTokens: words}}}

	raws, err := Run(doc, testSpec())
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "|SPEI ENVIADO|BANCO RECEPTOR BBVA|CLAVE DE RASTREO 0042", raws[0].Description)
}

func TestRun_StopAndSkipPhrases(t *testing.T) {
	words := append(headerAt(100, 350, 440, 530),
		word("DETALLE DE OPERACIONES", 20, 220, 110),
		word("02 FEB RETIRO CAJERO", 20, 200, 120),
		word("500.00", 330, 352, 120),
		word("8,750.00", 505, 532, 120),
		word("SALDO MINIMO REQUERIDO", 20, 230, 140),
		word("03 FEB NO DEBE APARECER", 20, 220, 160),
		word("1.00", 332, 352, 160),
	)
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{{WordTokens: words}}}

	raws, err := Run(doc, testSpec())
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "02 FEB", raws[0].Date)
}

func TestRun_NoHeaderAnywhere(t *testing.T) {
	doc := &pdftext.StubDocument{StubPages: []*pdftext.StubPage{
		{WordTokens: []model.Token{word("CARATULA", 20, 80, 50)}},
	}}
	_, err := Run(doc, testSpec())
	assert.ErrorIs(t, err, ErrNoHeader)
}
