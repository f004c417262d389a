package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"winery/domain/catalog"
	"winery/internal/config"
	"winery/internal/container"
	"winery/internal/errors"
	"winery/internal/logging"
	"winery/internal/plural"
)

func main() {
	envErr := godotenv.Load()
	logging.Setup(os.Stderr, config.DefaultLogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Str("code", errors.GetCode(err)).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "winery-cli",
		Short:         "Tools for building and serving the winery catalog page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newServeCmd(),
		newInspectCmd(),
		newSuffixCmd(),
	)
	return rootCmd
}

// loadConfig reads the environment, applies its log level and the -p flag
// when given.
func loadConfig(cmd *cobra.Command, productsPath string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Setup(os.Stderr, cfg.LogLevel)
	if f := cmd.Flags().Lookup("path_to_xlsx"); f != nil && f.Changed {
		cfg.Data.ProductsPath = productsPath
	}
	return cfg, nil
}

func addProductsFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "path_to_xlsx", "p", config.DefaultProductsPath, "Path to the product spreadsheet")
}

func newBuildCmd() *cobra.Command {
	var productsPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render index.html from the spreadsheet without serving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, productsPath)
			if err != nil {
				return err
			}
			c, err := container.New(cfg)
			if err != nil {
				return err
			}

			result, err := c.CatalogService.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories, %d products, %d bytes (%d %s)\n",
				result.OutputPath, result.Categories, result.Products, result.BytesWritten, result.WineryAge, result.YearSign)
			return nil
		},
	}
	addProductsFlag(cmd, &productsPath)
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site directory without rebuilding the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			c, err := container.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.Server.Start(ctx)
		},
	}
	return cmd
}

func newInspectCmd() *cobra.Command {
	var productsPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the products grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, productsPath)
			if err != nil {
				return err
			}
			c, err := container.New(cfg)
			if err != nil {
				return err
			}

			cat, err := c.Source.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), cat)
		},
	}
	addProductsFlag(cmd, &productsPath)
	return cmd
}

func printCatalog(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, category := range cat.Categories {
		fmt.Fprintf(tw, "%s (%d)\n", category.Name, len(category.Products))
		for _, product := range category.Products {
			values := make([]string, len(cat.Columns))
			for i, column := range cat.Columns {
				values[i] = product.Get(column)
			}
			fmt.Fprintf(tw, "\t%s\n", strings.Join(values, "\t"))
		}
	}
	return tw.Flush()
}

func newSuffixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suffix [years]",
		Short: "Print a number followed by the matching form of \"год\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidArgument(fmt.Sprintf("years must be an integer, got %q", args[0]))
			}
			sign, err := plural.YearSuffix(years)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", years, sign)
			return nil
		},
	}
}
