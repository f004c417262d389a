package ports

import (
	"context"

	"winery/domain/catalog"
)

// ProductSource loads the product list grouped by category
type ProductSource interface {
	// LoadCatalog reads the product spreadsheet and groups it by category
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
}

// PageData is everything a catalog page template can reference
type PageData struct {
	WineryAge    int
	YearSign     string
	ProductCards *catalog.Catalog
}

// PageRenderer turns page data into a finished HTML document
type PageRenderer interface {
	Render(data PageData) ([]byte, error)
}

// PageWriter persists a rendered page, replacing any previous version
type PageWriter interface {
	Write(page []byte) error
	Path() string
}
