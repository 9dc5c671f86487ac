// Package storage provides access to the upstream input store holding the
// three raw relations the report is computed from: orders, order items,
// and products.
//
// The pipeline treats the store as read-only; the insert methods exist for
// the CSV import job and for seeding test fixtures.
package storage

import "github.com/eshaffer321/sales-report-backend/internal/domain/report"

// Repository defines access to the input relations.
type Repository interface {
	// LoadOrders returns every order in the store.
	LoadOrders() ([]report.Order, error)

	// LoadOrderItems returns every order line item in the store.
	LoadOrderItems() ([]report.OrderItem, error)

	// LoadProducts returns every product in the store.
	LoadProducts() ([]report.Product, error)

	// InsertOrders appends orders in a single transaction.
	InsertOrders(orders []report.Order) error

	// InsertOrderItems appends order items in a single transaction.
	InsertOrderItems(items []report.OrderItem) error

	// InsertProducts appends products in a single transaction.
	InsertProducts(products []report.Product) error

	// Close releases the underlying connection.
	Close() error
}
