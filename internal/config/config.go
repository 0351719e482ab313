// Package config loads storefront configuration from a YAML file with
// environment variable overrides (STOREFRONT_CATALOG_PATH and so on).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the storefront CLI.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Orders  OrdersConfig  `mapstructure:"orders"`
	Store   StoreConfig   `mapstructure:"store"`
}

// CatalogConfig locates and bounds the catalog data.
type CatalogConfig struct {
	Path string `mapstructure:"path"`

	// MinPrice and MaxPrice are the default price slider bounds used
	// when a query does not set its own range.
	MinPrice int `mapstructure:"min_price"`
	MaxPrice int `mapstructure:"max_price"`
}

// OrdersConfig locates the order database.
type OrdersConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// StoreConfig holds display settings.
type StoreConfig struct {
	Name     string `mapstructure:"name"`
	Currency string `mapstructure:"currency"`
}

// Load reads configuration from an optional YAML file with environment
// variable overrides. A missing config file is not an error - all
// values have defaults; path may be empty to use the search path.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("storefront")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicit path must exist; the search path is optional.
		var notFound viper.ConfigFileNotFoundError
		if path != "" {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "catalog.yaml")
	v.SetDefault("catalog.min_price", 0)
	v.SetDefault("catalog.max_price", 10000)

	v.SetDefault("orders.db_path", "orders.db")

	v.SetDefault("store.name", "Craftloom")
	v.SetDefault("store.currency", "INR")
}
