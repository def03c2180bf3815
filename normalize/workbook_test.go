package normalize

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/demandcast/demandcast/demandseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func demandRows(n int) [][]string {
	rows := [][]string{{"Mois", "Valeur"}}
	for i := 0; i < n; i++ {
		rows = append(rows, []string{fmt.Sprintf("M%02d", i+1), fmt.Sprintf("%d", 100+i)})
	}
	return rows
}

func TestFromRows(t *testing.T) {
	testData := map[string]struct {
		rows     [][]string
		opt      *WorkbookOptions
		expected demandseries.Series
		err      error
	}{
		"no rows": {
			err: ErrNoHeaderRow,
		},
		"missing month column": {
			rows: [][]string{{"Article", "Valeur"}},
			err:  ErrMissingMonthColumn,
		},
		"missing value column": {
			rows: [][]string{{"Mois", "Quantité"}},
			err:  ErrMissingValueColumn,
		},
		"insufficient records": {
			rows: demandRows(11),
			err:  ErrInsufficientRecords,
		},
		"exactly twelve records": {
			rows:     demandRows(12),
			expected: demandseries.Series{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111},
		},
		"truncates to first twelve in file order": {
			rows:     demandRows(18),
			expected: demandseries.Series{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111},
		},
		"header with embedded newline": {
			rows: append([][]string{{"Mois\nde vente", "Valeur"}}, demandRows(12)[1:]...),
			opt: &WorkbookOptions{
				MonthColumn: "mois de vente",
				ValueColumn: "valeur",
			},
			expected: demandseries.Series{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111},
		},
		"comma decimals and negatives in cells": {
			rows: append([][]string{{"Mois", "Valeur"}},
				[][]string{
					{"M01", "1,5"}, {"M02", "-2"}, {"M03", "x"}, {"M04", "4"},
					{"M05", "5"}, {"M06", "6"}, {"M07", "7"}, {"M08", "8"},
					{"M09", "9"}, {"M10", "10"}, {"M11", "11"}, {"M12", "12"},
				}...),
			expected: demandseries.Series{1.5, 0, 0, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			s, err := FromRows(td.rows, td.opt)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, s)
		})
	}
}

func TestFromRowsDoesNotSortByMonthLabel(t *testing.T) {
	// rows arrive out of chronological order and are taken as-is
	rows := [][]string{{"Mois", "Valeur"}}
	for i := 12; i >= 1; i-- {
		rows = append(rows, []string{fmt.Sprintf("M%02d", i), fmt.Sprintf("%d", i)})
	}

	s, err := FromRows(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, demandseries.Series{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, s)
}

func TestFromWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demand.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Mois", "Valeur"}))
	for i := 0; i < 12; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &[]any{fmt.Sprintf("M%02d", i+1), 10 * (i + 1)}))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	s, err := FromWorkbook(path, nil)
	require.NoError(t, err)
	assert.Equal(t, demandseries.Series{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}, s)
}

func TestFromWorkbookMissingFile(t *testing.T) {
	_, err := FromWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"), nil)
	assert.Error(t, err)
}
