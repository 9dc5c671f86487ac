// Command report computes the daily sales report from the input store and
// writes it as CSV to a file or stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eshaffer321/sales-report-backend/internal/application/service"
	"github.com/eshaffer321/sales-report-backend/internal/cli"
	"github.com/eshaffer321/sales-report-backend/internal/export"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/config"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/logging"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	dbPath := flag.String("db", "", "Input store path (overrides config)")
	outPath := flag.String("out", "", "Output CSV path (default: stdout)")
	flag.Parse()

	cfg := config.LoadOrEnv(*configPath)
	if *dbPath != "" {
		cfg.Storage.DatabasePath = *dbPath
	}

	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "report")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open input store", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	svc := service.NewReportService(store, logger)
	result, err := svc.Run()
	if err != nil {
		logger.Error("report failed", "error", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("failed to create output file", "path", *outPath, "error", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := export.WriteCSV(out, result.Rows); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	if *outPath != "" {
		fmt.Printf("Report written to %s\n", *outPath)
		cli.PrintRunSummary(result)
	}
}
