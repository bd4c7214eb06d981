// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"contractor-quote/core/types"
	"contractor-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Storage contains storage configuration
	Storage StorageConfig `json:"storage"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Currency is the quote currency
	Currency types.Currency `json:"currency"`

	// MinimumProfitPercent is the profit floor enforced by the profit guard
	MinimumProfitPercent decimal.Decimal `json:"minimum_profit_percent"`

	// DefaultProfitPercent is used when a catalog item carries no profit target
	DefaultProfitPercent decimal.Decimal `json:"default_profit_percent"`

	// RoundUpPurchaseUnits forces whole material unit purchases
	// (e.g. full buckets) for layered work, even when the request
	// does not ask for it
	RoundUpPurchaseUnits bool `json:"round_up_purchase_units"`
}

// StorageConfig contains storage-related settings
type StorageConfig struct {
	// DatabasePath is the path to the catalog/quote database
	DatabasePath string `json:"database_path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-item cost breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".contractor-quote", "quotes.db")

	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency:             types.CurrencyUSD,
			MinimumProfitPercent: decimal.NewFromInt(20),
			DefaultProfitPercent: decimal.NewFromInt(30),
			RoundUpPurchaseUnits: true,
		},
		Storage: StorageConfig{
			DatabasePath: dbPath,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
