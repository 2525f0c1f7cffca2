// Package export writes normalized movements to CSV and XLSX files
// with the Spanish column headers downstream tooling expects.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/edocuenta/edocuenta/internal/model"
)

// headers are the output columns, in order. They match the csv tags on
// model.Movement.
var headers = []string{
	"fecha", "descripcion", "deposito", "retiro", "saldo",
	"tipo_movimiento", "contraparte", "institucion_contraparte", "concepto_movimiento",
}

// WriteCSV writes the movements as CSV.
func WriteCSV(w io.Writer, movs []model.Movement) error {
	if err := gocsv.Marshal(movs, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// SaveCSV writes the movements as a CSV file at path.
func SaveCSV(path string, movs []model.Movement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()
	if err := WriteCSV(f, movs); err != nil {
		return err
	}
	return f.Close()
}

// WriteXLSX writes the movements as a single-sheet workbook.
func WriteXLSX(w io.Writer, movs []model.Movement) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Movimientos"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, first, last, style)
	}

	for rowIdx, m := range movs {
		for colIdx, v := range rowValues(m) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", rowIdx+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the movements as an XLSX file at path.
func SaveXLSX(path string, movs []model.Movement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating xlsx file: %w", err)
	}
	defer f.Close()
	if err := WriteXLSX(f, movs); err != nil {
		return err
	}
	return f.Close()
}

// rowValues orders one movement's cells to match headers. Null amounts
// become empty cells, not zeros.
func rowValues(m model.Movement) []interface{} {
	return []interface{}{
		m.Date,
		m.Description,
		nullable(m.Deposit),
		nullable(m.Withdrawal),
		nullable(m.Balance),
		m.Type,
		m.Counterparty,
		m.CounterpartyBank,
		m.Concept,
	}
}

func nullable(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	f, _ := d.Decimal.Float64()
	return f
}
