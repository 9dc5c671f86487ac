// Command api serves the daily sales report over HTTP.
package main

import (
	"flag"
	"os"

	"github.com/eshaffer321/sales-report-backend/internal/api"
	"github.com/eshaffer321/sales-report-backend/internal/application/service"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/config"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/logging"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg := config.LoadOrEnv(*configPath)
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open input store", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	svc := service.NewReportService(store, logger)

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, svc, logger)

	if err := server.Run(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
