package normalize

import (
	"fmt"
	"strings"

	"github.com/demandcast/demandcast/demandseries"
	"github.com/xuri/excelize/v2"
)

// WorkbookOptions configures which sheet and columns carry the demand
// history. Column names are matched against normalized headers, lowercased
// and trimmed with embedded newlines collapsed to spaces.
type WorkbookOptions struct {
	// Sheet is the sheet to read. Empty means the first sheet.
	Sheet       string
	MonthColumn string
	ValueColumn string
}

// NewDefaultWorkbookOptions returns workbook options matching the standard
// demand export layout.
func NewDefaultWorkbookOptions() *WorkbookOptions {
	return &WorkbookOptions{
		MonthColumn: "mois",
		ValueColumn: "valeur",
	}
}

// FromWorkbook loads a demand series from an XLSX workbook. The named month
// and value columns must both be present and at least twelve data rows must
// follow the header. The first twelve rows in file order become the series.
func FromWorkbook(path string, opt *WorkbookOptions) (demandseries.Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook, %w", err)
	}
	defer f.Close()

	if opt == nil {
		opt = NewDefaultWorkbookOptions()
	}

	sheet := opt.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q, %w", sheet, err)
	}

	return FromRows(rows, opt)
}

// FromRows normalizes pre-extracted workbook rows, header row first. Exposed
// separately so callers holding rows from another source can reuse the same
// column resolution and truncation rules.
func FromRows(rows [][]string, opt *WorkbookOptions) (demandseries.Series, error) {
	if opt == nil {
		opt = NewDefaultWorkbookOptions()
	}
	if len(rows) == 0 {
		return nil, ErrNoHeaderRow
	}

	monthIdx, valueIdx := -1, -1
	for i, header := range rows[0] {
		switch NormalizeHeader(header) {
		case NormalizeHeader(opt.MonthColumn):
			if monthIdx == -1 {
				monthIdx = i
			}
		case NormalizeHeader(opt.ValueColumn):
			if valueIdx == -1 {
				valueIdx = i
			}
		}
	}
	if monthIdx == -1 {
		return nil, fmt.Errorf("column %q, %w", opt.MonthColumn, ErrMissingMonthColumn)
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("column %q, %w", opt.ValueColumn, ErrMissingValueColumn)
	}

	width := monthIdx
	if valueIdx > width {
		width = valueIdx
	}

	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= width {
			continue
		}
		records = append(records, row)
	}
	if len(records) < RequiredRecords {
		return nil, fmt.Errorf("got %d records, need %d, %w", len(records), RequiredRecords, ErrInsufficientRecords)
	}

	// rows are trusted as chronological, no re-sort by month label
	s := make(demandseries.Series, 0, RequiredRecords)
	for _, row := range records[:RequiredRecords] {
		s = append(s, ParseValue(row[valueIdx]))
	}
	return s, nil
}

// NormalizeHeader lowercases and trims a column header, collapsing embedded
// newlines to single spaces, matching how demand exports wrap their headers.
func NormalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\n", " ")
	h = strings.Join(strings.Fields(h), " ")
	return strings.ToLower(h)
}
