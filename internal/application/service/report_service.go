// Package service wires the input store to the report pipeline.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
	"github.com/eshaffer321/sales-report-backend/internal/domain/validator"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/storage"
)

// RunResult holds one report computation and its provenance.
type RunResult struct {
	RunID        string
	GeneratedAt  time.Time
	Duration     time.Duration
	OrdersRead   int
	ItemsRead    int
	ProductsRead int
	Rows         []report.ReportRow
}

// ReportService loads the input relations, validates them, and runs the
// pipeline. Each run is identified by a uuid for log correlation.
type ReportService struct {
	repo   storage.Repository
	logger *slog.Logger
}

// NewReportService creates a report service over the given repository.
func NewReportService(repo storage.Repository, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{repo: repo, logger: logger}
}

// Run computes the full daily report from the current store contents.
func (s *ReportService) Run() (*RunResult, error) {
	runID := uuid.NewString()
	started := time.Now()

	orders, err := s.repo.LoadOrders()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	items, err := s.repo.LoadOrderItems()
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	products, err := s.repo.LoadProducts()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	if err := validator.ValidateInputs(orders, items, products); err != nil {
		return nil, fmt.Errorf("input schema: %w", err)
	}

	rows := report.BuildReport(orders, items, products)
	duration := time.Since(started)

	s.logger.Info("report computed",
		"run_id", runID,
		"orders", len(orders),
		"items", len(items),
		"products", len(products),
		"report_rows", len(rows),
		"duration", duration)

	return &RunResult{
		RunID:        runID,
		GeneratedAt:  started.UTC(),
		Duration:     duration,
		OrdersRead:   len(orders),
		ItemsRead:    len(items),
		ProductsRead: len(products),
		Rows:         rows,
	}, nil
}

// RunRange computes the report and keeps only rows within [start, end].
// A nil bound is open.
func (s *ReportService) RunRange(start, end *time.Time) (*RunResult, error) {
	result, err := s.Run()
	if err != nil {
		return nil, err
	}
	if start == nil && end == nil {
		return result, nil
	}

	filtered := make([]report.ReportRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		if start != nil && row.PurchaseDate.Before(*start) {
			continue
		}
		if end != nil && row.PurchaseDate.After(*end) {
			continue
		}
		filtered = append(filtered, row)
	}
	result.Rows = filtered
	return result, nil
}
