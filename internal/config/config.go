package config

import (
	"fmt"
	"strings"

	"github.com/esquina/pos/pkg/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Data      DataConfig      `koanf:"data"`
	Inventory InventoryConfig `koanf:"inventory"`
	Log       LogConfig       `koanf:"log"`
}

type DataConfig struct {
	ProductsFile    string `koanf:"products_file"`
	FuelHistoryFile string `koanf:"fuel_history_file"`
	ReceiptFile     string `koanf:"receipt_file"`
}

type InventoryConfig struct {
	LowStockThreshold int `koanf:"low_stock_threshold"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Defaults returns the built-in configuration, the lowest-priority layer
// of the loader.
func Defaults() map[string]any {
	return map[string]any{
		"data.products_file":            "products.json",
		"data.fuel_history_file":        "fuel_history.json",
		"data.receipt_file":             "last_receipt.txt",
		"inventory.low_stock_threshold": 5,
		"log.level":                     "info",
	}
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Data Files ---\n")
	b.WriteString(fmt.Sprintf("  data.products_file: %s\n", c.Data.ProductsFile))
	b.WriteString(fmt.Sprintf("  data.fuel_history_file: %s\n", c.Data.FuelHistoryFile))
	b.WriteString(fmt.Sprintf("  data.receipt_file: %s\n", c.Data.ReceiptFile))

	b.WriteString("\n--- Inventory ---\n")
	b.WriteString(fmt.Sprintf("  inventory.low_stock_threshold: %d\n", c.Inventory.LowStockThreshold))

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if c.Data.ProductsFile == "" {
		return fmt.Errorf("data.products_file must not be empty")
	}
	if c.Data.FuelHistoryFile == "" {
		return fmt.Errorf("data.fuel_history_file must not be empty")
	}
	if c.Data.ReceiptFile == "" {
		return fmt.Errorf("data.receipt_file must not be empty")
	}
	if c.Inventory.LowStockThreshold <= 0 {
		return fmt.Errorf("inventory.low_stock_threshold must be positive, got %d", c.Inventory.LowStockThreshold)
	}
	return nil
}
