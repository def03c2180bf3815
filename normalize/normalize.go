// Package normalize shapes raw demand input into a fixed-length series for
// the smoother. Input comes either from an uploaded workbook with named
// month and value columns, or from manual per-month text entry.
//
// The workbook path trusts row order as chronological: the first twelve data
// rows are taken as-is and are never re-sorted by their month label.
package normalize

import (
	"errors"
	"strconv"
	"strings"

	"github.com/demandcast/demandcast/demandseries"
)

var (
	ErrMissingMonthColumn  = errors.New("month column not found in workbook")
	ErrMissingValueColumn  = errors.New("value column not found in workbook")
	ErrInsufficientRecords = errors.New("insufficient records in workbook")
	ErrNoHeaderRow         = errors.New("workbook has no header row")
)

// RequiredRecords is the minimum number of data rows a workbook must carry
// for file-based ingestion to produce a series.
const RequiredRecords = demandseries.MonthsPerYear

// ParseValue parses a raw demand value. A comma is treated as the decimal
// separator and replaced with a period before parsing. Unparsable text and
// negative results clamp to zero rather than reporting an error.
func ParseValue(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0.0
	}
	return v
}

// FromManual normalizes one raw text value per month slot. The output always
// has exactly twelve values matching slot order.
func FromManual(values [demandseries.MonthsPerYear]string) demandseries.Series {
	s := make(demandseries.Series, 0, demandseries.MonthsPerYear)
	for _, raw := range values {
		s = append(s, ParseValue(raw))
	}
	return s
}
