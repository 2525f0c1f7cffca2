package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edocuenta/edocuenta/internal/model"
)

func shiftRow(top float64, fecha, origen, desc, deposito, saldo string) model.Row {
	return model.Row{Top: top, Columns: map[string]string{
		"fecha":       fecha,
		"origen":      origen,
		"descripcion": desc,
		"deposito":    deposito,
		"saldo":       saldo,
	}}
}

func shiftSpec() ShiftSpec {
	return ShiftSpec{
		DateColumn:   "fecha",
		DescColumn:   "descripcion",
		OriginColumn: "origen",
		Amounts:      []string{"deposito", "saldo"},
	}
}

func TestShiftRows_AmountsOnlyRowFoldsDown(t *testing.T) {
	rows := []model.Row{
		shiftRow(10, "ENE 02", "REF1", "PAGO RECIBIDO", "", "1,000.00"),
		shiftRow(20, "", "", "", "500.00", "1,500.00"),
		shiftRow(21, "ENE 05", "REF2", "ABONO CLIENTE", "", ""),
	}

	got := ShiftRows(rows, shiftSpec())
	require.Len(t, got, 2)
	assert.Equal(t, "ENE 02", got[0].Col("fecha"))
	assert.Equal(t, "", got[0].Col("deposito"), "stray amounts must not stay with the previous movement")

	assert.Equal(t, "ENE 05", got[1].Col("fecha"))
	assert.Equal(t, "500.00", got[1].Col("deposito"))
	assert.Equal(t, "1,500.00", got[1].Col("saldo"))
}

func TestShiftRows_DescriptionAboveDatedRowPullsUp(t *testing.T) {
	rows := []model.Row{
		shiftRow(10, "", "", "TRASPASO ENTRE CUENTAS", "", ""),
		shiftRow(20, "ENE 07", "REF3", "", "200.00", "1,700.00"),
	}

	got := ShiftRows(rows, shiftSpec())
	require.Len(t, got, 1)
	assert.Equal(t, "ENE 07", got[0].Col("fecha"))
	assert.Equal(t, "TRASPASO ENTRE CUENTAS", got[0].Col("descripcion"))
	assert.Equal(t, "200.00", got[0].Col("deposito"))
}

func TestShiftRows_RegularRowsUntouched(t *testing.T) {
	rows := []model.Row{
		shiftRow(10, "ENE 02", "REF1", "PAGO", "100.00", "1,100.00"),
		shiftRow(20, "", "", "CONTINUACION", "", ""),
		shiftRow(30, "ENE 03", "REF2", "ABONO", "50.00", "1,150.00"),
	}

	got := ShiftRows(rows, shiftSpec())
	require.Len(t, got, 3)
	assert.Equal(t, "CONTINUACION", got[1].Col("descripcion"))
	assert.Equal(t, "100.00", got[0].Col("deposito"))
}
