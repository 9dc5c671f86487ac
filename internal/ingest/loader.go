// Package ingest loads the three input relations from CSV files into the
// input store.
//
// Each file carries a header row whose column names match the store's
// table columns. Files are read fully, validated, and inserted in one
// transaction per file, so a malformed file leaves the store untouched.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
	"github.com/eshaffer321/sales-report-backend/internal/infrastructure/storage"
)

// timestampLayouts are the accepted order_purchase_timestamp formats.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Loader imports CSV files into the input store.
type Loader struct {
	repo   storage.Repository
	logger *slog.Logger
}

// NewLoader creates a loader writing into the given repository.
func NewLoader(repo storage.Repository, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{repo: repo, logger: logger}
}

// ImportOrders reads an orders CSV (order_id, customer_id,
// order_purchase_timestamp) and inserts the rows. Returns the number of
// rows imported.
func (l *Loader) ImportOrders(path string) (int, error) {
	records, err := readCSV(path, []string{"order_id", "customer_id", "order_purchase_timestamp"})
	if err != nil {
		return 0, err
	}

	orders := make([]report.Order, 0, len(records))
	for i, rec := range records {
		ts, err := parseTimestamp(rec[2])
		if err != nil {
			return 0, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		orders = append(orders, report.Order{
			OrderID:           rec[0],
			CustomerID:        rec[1],
			PurchaseTimestamp: ts,
		})
	}
	if err := l.repo.InsertOrders(orders); err != nil {
		return 0, fmt.Errorf("insert orders from %s: %w", path, err)
	}
	l.logger.Info("imported orders", "file", path, "rows", len(orders))
	return len(orders), nil
}

// ImportOrderItems reads an order items CSV (order_id, product_id, price)
// and inserts the rows. Returns the number of rows imported.
func (l *Loader) ImportOrderItems(path string) (int, error) {
	records, err := readCSV(path, []string{"order_id", "product_id", "price"})
	if err != nil {
		return 0, err
	}

	items := make([]report.OrderItem, 0, len(records))
	for i, rec := range records {
		price, err := decimal.NewFromString(rec[2])
		if err != nil {
			return 0, fmt.Errorf("%s row %d: bad price %q: %w", path, i+2, rec[2], err)
		}
		items = append(items, report.OrderItem{
			OrderID:   rec[0],
			ProductID: rec[1],
			Price:     price,
		})
	}
	if err := l.repo.InsertOrderItems(items); err != nil {
		return 0, fmt.Errorf("insert order items from %s: %w", path, err)
	}
	l.logger.Info("imported order items", "file", path, "rows", len(items))
	return len(items), nil
}

// ImportProducts reads a products CSV (product_id, product_category_name)
// and inserts the rows. An empty category cell becomes a null category.
func (l *Loader) ImportProducts(path string) (int, error) {
	records, err := readCSV(path, []string{"product_id", "product_category_name"})
	if err != nil {
		return 0, err
	}

	products := make([]report.Product, 0, len(records))
	for _, rec := range records {
		p := report.Product{ProductID: rec[0]}
		if rec[1] != "" {
			category := rec[1]
			p.Category = &category
		}
		products = append(products, p)
	}
	if err := l.repo.InsertProducts(products); err != nil {
		return 0, fmt.Errorf("insert products from %s: %w", path, err)
	}
	l.logger.Info("imported products", "file", path, "rows", len(products))
	return len(products), nil
}

// readCSV reads all data rows of a CSV file after checking its header
// against the expected column names.
func readCSV(path string, expectedHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(expectedHeader)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file, expected header %v", path, expectedHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	for i, col := range expectedHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%s: header column %d is %q, expected %q", path, i+1, header[i], col)
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad order_purchase_timestamp %q", s)
}
