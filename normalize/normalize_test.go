package normalize

import (
	"testing"

	"github.com/demandcast/demandcast/demandseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	testData := map[string]struct {
		raw      string
		expected float64
	}{
		"comma decimal separator": {raw: "1,5", expected: 1.5},
		"period decimal":          {raw: "2.25", expected: 2.25},
		"integer":                 {raw: "120", expected: 120},
		"surrounding whitespace":  {raw: "  42 ", expected: 42},
		"negative clamps to zero": {raw: "-3", expected: 0},
		"unparsable text":         {raw: "abc", expected: 0},
		"empty string":            {raw: "", expected: 0},
		"double comma":            {raw: "1,2,3", expected: 0},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, ParseValue(td.raw))
		})
	}
}

func TestFromManual(t *testing.T) {
	values := [demandseries.MonthsPerYear]string{
		"10", "12,5", "abc", "-4", "0", "33",
		"7.75", "", "100", "85", "90", "95",
	}

	s := FromManual(values)
	require.Len(t, s, demandseries.MonthsPerYear)
	assert.Equal(t, demandseries.Series{10, 12.5, 0, 0, 0, 33, 7.75, 0, 100, 85, 90, 95}, s)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "code ean uvc", NormalizeHeader("Code EAN\nUVC"))
	assert.Equal(t, "mois", NormalizeHeader("  Mois "))
	assert.Equal(t, "valeur", NormalizeHeader("VALEUR"))
}
