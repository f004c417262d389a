package excel

import (
	"winery/domain/catalog"
)

// ExcelConfig holds configuration for the product spreadsheet source
type ExcelConfig struct {
	FilePath string `json:"file_path"`
	// Sheet is the worksheet to read; empty selects the first sheet.
	Sheet          string `json:"sheet"`
	CategoryColumn string `json:"category_column"`
}

// DefaultExcelConfig returns sensible defaults for product spreadsheets
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		FilePath:       "products.xlsx",
		CategoryColumn: catalog.CategoryColumn,
	}
}
