// Package catalog loads the retail article referential from an XLSX
// workbook and resolves articles by their EAN code.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/demandcast/demandcast/normalize"
	"github.com/xuri/excelize/v2"
)

var (
	ErrArticleNotFound = errors.New("article not found in catalog")
	ErrMissingColumn   = errors.New("required column not found in articles workbook")
	ErrEmptyCatalog    = errors.New("articles workbook has no article rows")
)

// Column headers of the articles referential export. Headers are matched
// after normalization so wrapped or re-cased variants resolve too.
const (
	ColumnEAN      = "code ean uvc"
	ColumnName     = "nom article(25car)"
	ColumnSupplier = "libellé fournisseur"
)

// Article is one referential entry.
type Article struct {
	EAN      string `json:"ean"`
	Name     string `json:"name"`
	Supplier string `json:"supplier"`
}

// Catalog holds the article referential preserving workbook row order.
type Catalog struct {
	articles []Article
	byEAN    map[string]int
}

// Load reads the articles referential from the first sheet of an XLSX
// workbook.
func Load(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open articles workbook, %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("unable to read articles sheet, %w", err)
	}
	return FromRows(rows)
}

// FromRows builds a catalog from pre-extracted workbook rows, header first.
func FromRows(rows [][]string) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCatalog
	}

	idx := map[string]int{
		ColumnEAN:      -1,
		ColumnName:     -1,
		ColumnSupplier: -1,
	}
	for i, header := range rows[0] {
		h := normalize.NormalizeHeader(header)
		if pos, ok := idx[h]; ok && pos == -1 {
			idx[h] = i
		}
	}
	for _, col := range []string{ColumnEAN, ColumnName, ColumnSupplier} {
		if idx[col] == -1 {
			return nil, fmt.Errorf("column %q, %w", col, ErrMissingColumn)
		}
	}

	c := &Catalog{byEAN: make(map[string]int)}
	for _, row := range rows[1:] {
		ean := cell(row, idx[ColumnEAN])
		if ean == "" {
			continue
		}
		if _, exists := c.byEAN[ean]; exists {
			continue
		}
		c.byEAN[ean] = len(c.articles)
		c.articles = append(c.articles, Article{
			EAN:      ean,
			Name:     cell(row, idx[ColumnName]),
			Supplier: cell(row, idx[ColumnSupplier]),
		})
	}
	if len(c.articles) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Get resolves an article by EAN code.
func (c *Catalog) Get(ean string) (Article, error) {
	i, ok := c.byEAN[strings.TrimSpace(ean)]
	if !ok {
		return Article{}, fmt.Errorf("ean %q, %w", ean, ErrArticleNotFound)
	}
	return c.articles[i], nil
}

// EANs returns all EAN codes in workbook row order.
func (c *Catalog) EANs() []string {
	eans := make([]string, 0, len(c.articles))
	for _, a := range c.articles {
		eans = append(eans, a.EAN)
	}
	return eans
}

// Len returns the number of articles.
func (c *Catalog) Len() int {
	return len(c.articles)
}
