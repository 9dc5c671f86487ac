package storage

import "github.com/eshaffer321/sales-report-backend/internal/domain/report"

// MockRepository is an in-memory implementation of Repository for testing.
type MockRepository struct {
	Orders     []report.Order
	OrderItems []report.OrderItem
	Products   []report.Product

	// Error injection for testing error paths
	LoadOrdersErr     error
	LoadOrderItemsErr error
	LoadProductsErr   error
	InsertErr         error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// Close does nothing for mock
func (m *MockRepository) Close() error {
	return nil
}

// LoadOrders returns the in-memory orders
func (m *MockRepository) LoadOrders() ([]report.Order, error) {
	if m.LoadOrdersErr != nil {
		return nil, m.LoadOrdersErr
	}
	return m.Orders, nil
}

// LoadOrderItems returns the in-memory order items
func (m *MockRepository) LoadOrderItems() ([]report.OrderItem, error) {
	if m.LoadOrderItemsErr != nil {
		return nil, m.LoadOrderItemsErr
	}
	return m.OrderItems, nil
}

// LoadProducts returns the in-memory products
func (m *MockRepository) LoadProducts() ([]report.Product, error) {
	if m.LoadProductsErr != nil {
		return nil, m.LoadProductsErr
	}
	return m.Products, nil
}

// InsertOrders appends to the in-memory orders
func (m *MockRepository) InsertOrders(orders []report.Order) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Orders = append(m.Orders, orders...)
	return nil
}

// InsertOrderItems appends to the in-memory order items
func (m *MockRepository) InsertOrderItems(items []report.OrderItem) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.OrderItems = append(m.OrderItems, items...)
	return nil
}

// InsertProducts appends to the in-memory products
func (m *MockRepository) InsertProducts(products []report.Product) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Products = append(m.Products, products...)
	return nil
}
