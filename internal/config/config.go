package config

import (
	"net"
	"os"
	"strconv"
	"strings"

	"winery/internal/errors"
)

// Defaults for every file and network setting.
const (
	DefaultProductsPath = "products.xlsx"
	DefaultTemplatePath = "template.html"
	DefaultOutputPath   = "index.html"
	DefaultHost         = "0.0.0.0"
	DefaultPort         = "8000"
	DefaultRoot         = "."
	DefaultLogLevel     = "INFO"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Site     SiteConfig
	Server   ServerConfig
	// LogLevel is one of ERROR, WARN, INFO, DEBUG, TRACE.
	LogLevel string
}

// DataConfig holds the product spreadsheet settings
type DataConfig struct {
	ProductsPath string
	// Sheet is the worksheet to read; empty means the first sheet.
	Sheet string
}

// SiteConfig holds the template and generated page paths
type SiteConfig struct {
	TemplatePath string
	OutputPath   string
}

// ServerConfig holds static server settings
type ServerConfig struct {
	Host string
	Port string
	Root string
}

// Addr is the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:     *loadDataConfig(),
		Site:     *loadSiteConfig(),
		Server:   *loadServerConfig(),
		LogLevel: getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Data:     DataConfig{ProductsPath: DefaultProductsPath},
		Site:     SiteConfig{TemplatePath: DefaultTemplatePath, OutputPath: DefaultOutputPath},
		Server:   ServerConfig{Host: DefaultHost, Port: DefaultPort, Root: DefaultRoot},
		LogLevel: DefaultLogLevel,
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		ProductsPath: getEnvOrDefault("PRODUCTS_PATH", DefaultProductsPath),
		Sheet:        getEnvOrDefault("PRODUCTS_SHEET", ""),
	}
}

func loadSiteConfig() *SiteConfig {
	return &SiteConfig{
		TemplatePath: getEnvOrDefault("TEMPLATE_PATH", DefaultTemplatePath),
		OutputPath:   getEnvOrDefault("OUTPUT_PATH", DefaultOutputPath),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: getEnvOrDefault("HOST", DefaultHost),
		Port: getEnvOrDefault("PORT", DefaultPort),
		Root: getEnvOrDefault("SERVE_ROOT", DefaultRoot),
	}
}

// Validate checks that paths are set and the port is a valid TCP port.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.ProductsPath) == "" {
		return errors.ConfigInvalid("products path is required")
	}
	if strings.TrimSpace(c.Site.TemplatePath) == "" {
		return errors.ConfigInvalid("template path is required")
	}
	if strings.TrimSpace(c.Site.OutputPath) == "" {
		return errors.ConfigInvalid("output path is required")
	}
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return errors.ConfigInvalid("port must be a number between 0 and 65535, got " + strconv.Quote(c.Server.Port))
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
