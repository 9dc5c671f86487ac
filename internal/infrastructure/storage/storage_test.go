package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_OrdersRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	in := []report.Order{
		{OrderID: "o1", CustomerID: "c1", PurchaseTimestamp: time.Date(2021, 1, 1, 10, 30, 0, 0, time.UTC)},
		{OrderID: "o2", CustomerID: "c2", PurchaseTimestamp: time.Date(2021, 1, 2, 8, 15, 45, 0, time.UTC)},
	}
	require.NoError(t, s.InsertOrders(in))

	out, err := s.LoadOrders()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.ElementsMatch(t, in, out)
}

func TestStorage_PricesSurviveExactly(t *testing.T) {
	s := newTestStorage(t)

	// Amounts that do not have exact binary-float representations.
	in := []report.OrderItem{
		{OrderID: "o1", ProductID: "p1", Price: decimal.RequireFromString("19.99")},
		{OrderID: "o1", ProductID: "p2", Price: decimal.RequireFromString("0.10")},
		{OrderID: "o1", ProductID: "p3", Price: decimal.RequireFromString("1234567.89")},
	}
	require.NoError(t, s.InsertOrderItems(in))

	out, err := s.LoadOrderItems()
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := range in {
		assert.True(t, out[i].Price.Equal(in[i].Price), "price %s came back as %s", in[i].Price, out[i].Price)
	}
}

func TestStorage_NullCategoryRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	category := "electronics"
	in := []report.Product{
		{ProductID: "p1", Category: &category},
		{ProductID: "p2", Category: nil},
	}
	require.NoError(t, s.InsertProducts(in))

	out, err := s.LoadProducts()
	require.NoError(t, err)
	require.Len(t, out, 2)

	byID := make(map[string]report.Product)
	for _, p := range out {
		byID[p.ProductID] = p
	}
	require.NotNil(t, byID["p1"].Category)
	assert.Equal(t, "electronics", *byID["p1"].Category)
	assert.Nil(t, byID["p2"].Category)
}

func TestStorage_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")

	s1, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, s1.InsertProducts([]report.Product{{ProductID: "p1"}}))
	require.NoError(t, s1.Close())

	// Reopening must not re-run applied migrations or lose data.
	s2, err := NewStorage(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	products, err := s2.LoadProducts()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestStorage_EmptyRelations(t *testing.T) {
	s := newTestStorage(t)

	orders, err := s.LoadOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)

	items, err := s.LoadOrderItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}
