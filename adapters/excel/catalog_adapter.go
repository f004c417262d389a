package excel

import (
	"context"

	"winery/domain/catalog"
	"winery/internal/errors"
	"winery/ports"
)

// CatalogAdapter implements ports.ProductSource on top of a spreadsheet file
type CatalogAdapter struct {
	config ExcelConfig
	reader *DataReader
}

var _ ports.ProductSource = (*CatalogAdapter)(nil)

// NewCatalogAdapter creates a product source for the configured spreadsheet
func NewCatalogAdapter(config ExcelConfig) *CatalogAdapter {
	if config.CategoryColumn == "" {
		config.CategoryColumn = catalog.CategoryColumn
	}
	return &CatalogAdapter{
		config: config,
		reader: NewDataReader(config.FilePath).WithSheet(config.Sheet),
	}
}

// LoadCatalog reads the spreadsheet and groups its rows by category
func (a *CatalogAdapter) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	table, err := a.reader.ReadTable(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read products from %s", a.config.FilePath)
	}

	cat, err := catalog.GroupByCategory(table, a.config.CategoryColumn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to group products from %s", a.config.FilePath)
	}
	return cat, nil
}
