package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func articleRows() [][]string {
	return [][]string{
		{"Code EAN\nUVC", "Nom Article(25car)", "Libellé Fournisseur"},
		{"3017620422003", "PATE A TARTINER 825G", "FERRERO FRANCE"},
		{"3228857000852", "PAIN DE MIE COMPLET", "HARRYS"},
		{"3017620422003", "DUPLICATE ROW IGNORED", "FERRERO FRANCE"},
		{"", "ROW WITHOUT EAN", "IGNORED"},
	}
}

func TestFromRows(t *testing.T) {
	c, err := FromRows(articleRows())
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"3017620422003", "3228857000852"}, c.EANs())

	a, err := c.Get("3017620422003")
	require.NoError(t, err)
	assert.Equal(t, Article{
		EAN:      "3017620422003",
		Name:     "PATE A TARTINER 825G",
		Supplier: "FERRERO FRANCE",
	}, a)
}

func TestFromRowsErrors(t *testing.T) {
	testData := map[string]struct {
		rows [][]string
		err  error
	}{
		"no rows": {
			err: ErrEmptyCatalog,
		},
		"missing ean column": {
			rows: [][]string{{"Nom Article(25car)", "Libellé Fournisseur"}},
			err:  ErrMissingColumn,
		},
		"header only": {
			rows: articleRows()[:1],
			err:  ErrEmptyCatalog,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := FromRows(td.rows)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestGetNotFound(t *testing.T) {
	c, err := FromRows(articleRows())
	require.NoError(t, err)

	_, err = c.Get("0000000000000")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range articleRows() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &vals))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}
