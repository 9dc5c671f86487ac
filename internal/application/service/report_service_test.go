package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/storage"
)

func seededRepo() *storage.MockRepository {
	electronics := "electronics"
	books := "books"
	repo := storage.NewMockRepository()
	repo.Orders = []report.Order{
		{OrderID: "o1", CustomerID: "c1", PurchaseTimestamp: time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)},
		{OrderID: "o2", CustomerID: "c2", PurchaseTimestamp: time.Date(2021, 1, 2, 9, 0, 0, 0, time.UTC)},
	}
	repo.OrderItems = []report.OrderItem{
		{OrderID: "o1", ProductID: "p1", Price: decimal.RequireFromString("100.00")},
		{OrderID: "o1", ProductID: "p2", Price: decimal.RequireFromString("50.00")},
		{OrderID: "o2", ProductID: "p2", Price: decimal.RequireFromString("25.00")},
	}
	repo.Products = []report.Product{
		{ProductID: "p1", Category: &electronics},
		{ProductID: "p2", Category: &books},
	}
	return repo
}

func TestReportService_Run(t *testing.T) {
	svc := NewReportService(seededRepo(), nil)

	result, err := svc.Run()
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.OrdersRead)
	assert.Equal(t, 3, result.ItemsRead)
	assert.Equal(t, 2, result.ProductsRead)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), result.Rows[0].PurchaseDate)
}

func TestReportService_RunRange(t *testing.T) {
	svc := NewReportService(seededRepo(), nil)

	start := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
	result, err := svc.RunRange(&start, nil)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, start, result.Rows[0].PurchaseDate)
}

func TestReportService_PropagatesLoadErrors(t *testing.T) {
	repo := storage.NewMockRepository()
	repo.LoadOrdersErr = errors.New("store offline")

	svc := NewReportService(repo, nil)
	_, err := svc.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load orders")
}

func TestReportService_RejectsSchemaViolations(t *testing.T) {
	repo := seededRepo()
	repo.Orders[0].CustomerID = ""

	svc := NewReportService(repo, nil)
	_, err := svc.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input schema")
}
