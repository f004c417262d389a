package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"winery/internal/config"
	"winery/internal/container"
	"winery/internal/errors"
	"winery/internal/logging"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()
	logging.Setup(os.Stderr, config.DefaultLogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Str("code", errors.GetCode(err)).Msg("site failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var productsPath string

	cmd := &cobra.Command{
		Use:           "winery",
		Short:         `Запуск сайта винодельни "Новое русское вино"`,
		Long:          `Builds index.html from template.html and the product spreadsheet, then serves the working directory on 0.0.0.0:8000.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(os.Stderr, cfg.LogLevel)
			if cmd.Flags().Changed("path_to_xlsx") {
				cfg.Data.ProductsPath = productsPath
			}

			c, err := container.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&productsPath, "path_to_xlsx", "p", config.DefaultProductsPath, "Путь к файлу с данными о товарах")
	return cmd
}
