package demandcast

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/demandcast/demandcast/horizon"
	"github.com/xuri/excelize/v2"
)

// CSVDelimiter matches the delimited-text export format consumed by the
// downstream planning tools.
const CSVDelimiter = ';'

// WriteCSV writes the forecast as semicolon-delimited text with one row per
// horizon month.
func WriteCSV(w io.Writer, months []horizon.Month, forecast []float64) error {
	if len(months) != len(forecast) {
		return fmt.Errorf("expected %d, but got %d, %w", len(months), len(forecast), ErrResLenMismatch)
	}

	cw := csv.NewWriter(w)
	cw.Comma = CSVDelimiter

	if err := cw.Write([]string{"Mois", "Prévision"}); err != nil {
		return err
	}
	for i, m := range months {
		row := []string{m.Label, strconv.FormatFloat(forecast[i], 'f', -1, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWorkbook writes the forecast to an XLSX workbook at path with one row
// per horizon month, including the calendar context for planners.
func WriteWorkbook(path string, months []horizon.Month, forecast []float64) error {
	if len(months) != len(forecast) {
		return fmt.Errorf("expected %d, but got %d, %w", len(months), len(forecast), ErrResLenMismatch)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Mois", "Prévision", "Jours ouvrés", "Jours fériés"}); err != nil {
		return err
	}
	for i, m := range months {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{m.Label, forecast[i], m.Workdays, m.Holidays}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
