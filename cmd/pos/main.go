// Package main implements the console inventory and point-of-sale
// application.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/esquina/pos/internal/cli"
	"github.com/esquina/pos/internal/config"
	"github.com/esquina/pos/internal/fuel"
	"github.com/esquina/pos/internal/inventory"
	"github.com/esquina/pos/internal/receipt"
	"github.com/esquina/pos/internal/sale"
	"github.com/esquina/pos/internal/store"
	"github.com/esquina/pos/pkg/bootstrap"
	"github.com/esquina/pos/pkg/configloader"
)

const appName = "pos"

func main() {
	if err := run(); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the ledgers to their data files and
// hands control to the interactive menu loop.
func run() error {
	cfg, cfgErr := configloader.Load[*config.Config](appName, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", slog.String("config", cfg.String()))

	files := store.NewFileStore(cfg.Data.ProductsFile, cfg.Data.FuelHistoryFile, logger)

	ledger := inventory.NewLedger(logger, cfg.Inventory.LowStockThreshold)
	ledger.Subscribe("low-stock-alert", inventory.NewLowStockAlert(logger))
	ledger.Load(files.LoadProducts())

	fuelLedger := fuel.NewLedger(logger)
	fuelLedger.Load(files.LoadCharges())

	receipts := receipt.NewGenerator(cfg.Data.ReceiptFile)
	checkout := sale.NewFacade(ledger, receipts, logger)

	menu := cli.NewMenu(os.Stdin, os.Stdout, ledger, fuelLedger, files, checkout, logger)
	return menu.Run()
}
