// Command import loads the orders, order_items, and products CSV files
// into the input store.
package main

import (
	"flag"
	"os"

	"github.com/eshaffer321/sales-report-backend/internal/cli"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/config"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/logging"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/storage"
	"github.com/eshaffer321/sales-report-backend/internal/ingest"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	dbPath := flag.String("db", "", "Input store path (overrides config)")
	ordersPath := flag.String("orders", "", "Orders CSV file")
	itemsPath := flag.String("items", "", "Order items CSV file")
	productsPath := flag.String("products", "", "Products CSV file")
	flag.Parse()

	if *ordersPath == "" && *itemsPath == "" && *productsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadOrEnv(*configPath)
	if *dbPath != "" {
		cfg.Storage.DatabasePath = *dbPath
	}

	cli.PrintHeader("import")
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "import")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open input store", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	loader := ingest.NewLoader(store, logger)
	counts := make(map[string]int)

	if *ordersPath != "" {
		n, err := loader.ImportOrders(*ordersPath)
		if err != nil {
			logger.Error("orders import failed", "error", err)
			os.Exit(1)
		}
		counts[*ordersPath] = n
	}
	if *itemsPath != "" {
		n, err := loader.ImportOrderItems(*itemsPath)
		if err != nil {
			logger.Error("order items import failed", "error", err)
			os.Exit(1)
		}
		counts[*itemsPath] = n
	}
	if *productsPath != "" {
		n, err := loader.ImportProducts(*productsPath)
		if err != nil {
			logger.Error("products import failed", "error", err)
			os.Exit(1)
		}
		counts[*productsPath] = n
	}

	cli.PrintImportSummary(counts)
}
