package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edocuenta/edocuenta/internal/model"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func sampleMovements() []model.Movement {
	return []model.Movement{
		{
			Date:             "02/ENE/2024",
			Description:      "|SPEI RECIBIDO|BANCO EMISOR",
			Deposit:          dec("1500.00"),
			Balance:          dec("2500.00"),
			Type:             "SPEI",
			Counterparty:     "JUAN PEREZ",
			CounterpartyBank: "STP",
			Concept:          "RENTA",
		},
		{
			Date:         "05/ENE/2024",
			Description:  "|COMPRA OXXO",
			Withdrawal:   dec("200.00"),
			Balance:      dec("2300.00"),
			Type:         "COMPRA",
			Counterparty: "Sin contraparte",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleMovements()))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t,
		"fecha,descripcion,deposito,retiro,saldo,tipo_movimiento,contraparte,institucion_contraparte,concepto_movimiento",
		string(lines[0]))
	assert.Contains(t, string(lines[1]), "02/ENE/2024")
	assert.Contains(t, string(lines[1]), "1500")
	// A withdrawal-only row leaves the deposit cell empty.
	assert.Contains(t, string(lines[2]), ",,200")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleMovements()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Movimientos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "fecha", rows[0][0])
	assert.Equal(t, "02/ENE/2024", rows[1][0])
	assert.Equal(t, "1500", rows[1][2])
	assert.Equal(t, "SPEI", rows[1][5])
	assert.Equal(t, "200", rows[2][3])
}

func TestSaveCSVAndXLSX(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveCSV(dir+"/movs.csv", sampleMovements()))
	require.NoError(t, SaveXLSX(dir+"/movs.xlsx", sampleMovements()))

	f, err := excelize.OpenFile(dir + "/movs.xlsx")
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Movimientos")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
