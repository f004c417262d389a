package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"winery/domain/winery"
	"winery/internal/errors"
	"winery/internal/logging"
	"winery/internal/plural"
	"winery/ports"
)

// CatalogService builds the catalog page: load products, render, write
type CatalogService struct {
	source   ports.ProductSource
	renderer ports.PageRenderer
	writer   ports.PageWriter
	clock    func() time.Time
	log      zerolog.Logger
}

// BuildResult summarizes one page build
type BuildResult struct {
	WineryAge    int
	YearSign     string
	Categories   int
	Products     int
	BytesWritten int
	OutputPath   string
}

// NewCatalogService creates a catalog service. A nil clock means time.Now.
func NewCatalogService(source ports.ProductSource, renderer ports.PageRenderer, writer ports.PageWriter, clock func() time.Time) *CatalogService {
	if clock == nil {
		clock = time.Now
	}
	return &CatalogService{
		source:   source,
		renderer: renderer,
		writer:   writer,
		clock:    clock,
		log:      logging.Component("pipeline"),
	}
}

// Build runs the whole page generation once. Nothing is written if any
// step before the write fails.
func (s *CatalogService) Build(ctx context.Context) (*BuildResult, error) {
	products, err := s.source.LoadCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load products")
	}

	age := winery.Age(s.clock())
	yearSign, err := plural.YearSuffix(age)
	if err != nil {
		return nil, errors.Wrapf(err, "winery age %d", age)
	}

	page, err := s.renderer.Render(ports.PageData{
		WineryAge:    age,
		YearSign:     yearSign,
		ProductCards: products,
	})
	if err != nil {
		return nil, errors.Wrap(err, "render page")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.writer.Write(page); err != nil {
		return nil, errors.Wrap(err, "write page")
	}

	result := &BuildResult{
		WineryAge:    age,
		YearSign:     yearSign,
		Categories:   products.Len(),
		Products:     products.ProductCount(),
		BytesWritten: len(page),
		OutputPath:   s.writer.Path(),
	}
	s.log.Info().
		Int("age", result.WineryAge).
		Str("year_sign", result.YearSign).
		Int("categories", result.Categories).
		Int("products", result.Products).
		Str("output", result.OutputPath).
		Msg("catalog page built")
	return result, nil
}
