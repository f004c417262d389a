package container

import (
	"context"

	"winery/adapters/excel"
	"winery/app"
	"winery/internal/config"
	"winery/internal/errors"
	"winery/internal/publish"
	"winery/ui"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	Source   *excel.CatalogAdapter
	Renderer *ui.PageRenderer
	Writer   *publish.FileWriter

	CatalogService *app.CatalogService
	Server         *ui.Server
}

// New wires every component from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	excelConfig := excel.DefaultExcelConfig()
	excelConfig.FilePath = cfg.Data.ProductsPath
	excelConfig.Sheet = cfg.Data.Sheet

	c := &Container{
		Config:   cfg,
		Source:   excel.NewCatalogAdapter(excelConfig),
		Renderer: ui.NewPageRenderer(cfg.Site.TemplatePath),
		Writer:   publish.NewFileWriter(cfg.Site.OutputPath),
		Server: ui.NewServer(ui.ServerConfig{
			Addr: cfg.Server.Addr(),
			Root: cfg.Server.Root,
		}),
	}
	c.CatalogService = app.NewCatalogService(c.Source, c.Renderer, c.Writer, nil)
	return c, nil
}

// Run builds the page and then serves the site until ctx is done.
// The server is never started when the build fails.
func (c *Container) Run(ctx context.Context) error {
	if _, err := c.CatalogService.Build(ctx); err != nil {
		return err
	}
	return c.Server.Start(ctx)
}
