package textscan

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edocuenta/edocuenta/internal/pdftext"
)

func doc(pages ...string) *pdftext.StubDocument {
	d := &pdftext.StubDocument{}
	for _, p := range pages {
		d.StubPages = append(d.StubPages, &pdftext.StubPage{PageText: p})
	}
	return d
}

func TestRun_SignedAmountBlocks(t *testing.T) {
	spec := Spec{
		Contains: regexp.MustCompile(`MOVIMIENTOS`),
		Date:     regexp.MustCompile(`\d{2} [A-Z]{3} \d{4}`),
		Amounts:  AmountsSigned,
		Strip:    []*regexp.Regexp{regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)},
	}
	text := "MOVIMIENTOS\n" +
		"02 ENE 2024 10:15:22\nTransferencia enviada a Juan\n-$1,500.00\n" +
		"05 ENE 2024 08:00:01\nDeposito recibido\n+$2,000.00\n"
	raws, err := Run(doc(text), spec)
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "02 ENE 2024", raws[0].Date)
	assert.Equal(t, "-$1,500.00", raws[0].Amount)
	assert.Equal(t, "Transferencia enviada a Juan", raws[0].Description)
	assert.Equal(t, "+$2,000.00", raws[1].Amount)
	assert.Equal(t, "Deposito recibido", raws[1].Description)
}

func TestRun_TrailingPairLineMode(t *testing.T) {
	spec := Spec{
		Contains: regexp.MustCompile(`DETALLE DE MOVIMIENTOS`),
		Date:     regexp.MustCompile(`^\d{2}/[A-Z]{3}`),
		LineMode: true,
		Amounts:  AmountsTrailingPair,
	}
	text := "DETALLE DE MOVIMIENTOS\n" +
		"SALDO ANTERIOR 10,000.00\n" +
		"03/FEB PAGO TARJETA 1,200.00 8,800.00\n" +
		"10/FEB DEPOSITO NOMINA 5,000.00 13,800.00\n"
	raws, err := Run(doc(text), spec)
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "03/FEB", raws[0].Date)
	assert.Equal(t, "1,200.00", raws[0].Amount)
	assert.Equal(t, "8,800.00", raws[0].Balance)
	assert.Equal(t, "PAGO TARJETA", raws[0].Description)
	assert.Equal(t, "13,800.00", raws[1].Balance)
}

func TestRun_TrailingPairSingleToken(t *testing.T) {
	spec := Spec{
		Date:     regexp.MustCompile(`^\d{2}/[A-Z]{3}`),
		LineMode: true,
		Amounts:  AmountsTrailingPair,
	}
	raws, err := Run(doc("01/ENE SALDO INICIAL 4,000.00\n"), spec)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Empty(t, raws[0].Amount)
	assert.Equal(t, "4,000.00", raws[0].Balance)
}

func TestRun_CurrencySplit(t *testing.T) {
	spec := Spec{
		Date:     regexp.MustCompile(`\d{2}-[A-Z]{3}-\d{2}`),
		LineMode: true,
		Amounts:  AmountsCurrencySplit,
	}
	text := "04-MAR-24 RETIRO CAJERO $500.00- $7,300.00\n" +
		"06-MAR-24 ABONO SPEI $1,000.00 $8,300.00\n"
	raws, err := Run(doc(text), spec)
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "500.00-", raws[0].Amount)
	assert.Equal(t, "7,300.00", raws[0].Balance)
	assert.Equal(t, "RETIRO CAJERO", raws[0].Description)
	assert.Equal(t, "1,000.00", raws[1].Amount)
}

func TestRun_BeginEndMarkers(t *testing.T) {
	spec := Spec{
		Begin:   regexp.MustCompile(`DETALLE DE OPERACIONES`),
		End:     regexp.MustCompile(`SALDO FINAL`),
		Date:    regexp.MustCompile(`\d{2}/[A-Z]{3}`),
		Amounts: AmountsTrailingPair,
	}
	page1 := "RESUMEN DEL PERIODO\n01/ENE esto no cuenta 9.99 9.99\n"
	page2 := "DETALLE DE OPERACIONES\n02/ENE COMPRA OXXO 150.00 850.00\n"
	page3 := "03/ENE ABONO 500.00 1,350.00\nSALDO FINAL\n04/ENE FANTASMA 1.00 1.00\n"
	raws, err := Run(doc(page1, page2, page3), spec)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "02/ENE", raws[0].Date)
	assert.Equal(t, "03/ENE", raws[1].Date)
}

func TestRun_NoMarkersAnywhere(t *testing.T) {
	spec := Spec{
		Contains: regexp.MustCompile(`MOVIMIENTOS`),
		Date:     regexp.MustCompile(`\d{2}/[A-Z]{3}`),
	}
	_, err := Run(doc("pagina legal\n", "publicidad\n"), spec)
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestRun_BlockEndStopsEarly(t *testing.T) {
	spec := Spec{
		Date:     regexp.MustCompile(`\d{2} [A-Z]{3} \d{4}`),
		BlockEnd: regexp.MustCompile(`Folio \d+`),
		Amounts:  AmountsSigned,
	}
	text := "02 ENE 2024 Pago de servicio\n-$300.00\nFolio 12345\nLeyenda CFDI que no pertenece al movimiento\n"
	raws, err := Run(doc(text), spec)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "Pago de servicio Folio 12345", raws[0].Description)
}
