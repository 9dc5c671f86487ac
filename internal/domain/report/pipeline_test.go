package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The worked single-order example: one customer, one order, two items in
// two categories.
func TestBuildReport_EndToEnd(t *testing.T) {
	orders := []Order{
		{OrderID: "o1", CustomerID: "c1", PurchaseTimestamp: time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	items := []OrderItem{
		{OrderID: "o1", ProductID: "p1", Price: dec("100.00")},
		{OrderID: "o1", ProductID: "p2", Price: dec("50.00")},
	}
	products := []Product{
		{ProductID: "p1", Category: strPtr("electronics")},
		{ProductID: "p2", Category: strPtr("books")},
	}

	rows := BuildReport(orders, items, products)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), row.PurchaseDate)
	assert.Equal(t, 1, row.TotalOrders)
	assert.Equal(t, 1, row.TotalCustomers)
	assert.True(t, row.TotalRevenue.Equal(dec("150.00")), "got %s", row.TotalRevenue)
	assert.True(t, row.AvgRevenuePerOrder.Equal(dec("150.00")), "got %s", row.AvgRevenuePerOrder)

	require.NotNil(t, row.Top1Category)
	assert.Equal(t, "electronics", *row.Top1Category)
	require.NotNil(t, row.Top1PercentRevenue)
	assert.True(t, row.Top1PercentRevenue.Equal(dec("0.67")), "got %s", row.Top1PercentRevenue)

	require.NotNil(t, row.Top2Category)
	assert.Equal(t, "books", *row.Top2Category)
	require.NotNil(t, row.Top2PercentRevenue)
	assert.True(t, row.Top2PercentRevenue.Equal(dec("0.33")), "got %s", row.Top2PercentRevenue)

	assert.Nil(t, row.Top3Category)
	assert.Nil(t, row.Top3PercentRevenue)
}

// Revenue conservation: a date's total revenue from categorized products
// equals the sum of all category revenues for that date.
func TestBuildReport_RevenueConservation(t *testing.T) {
	orders := []Order{
		{OrderID: "o1", CustomerID: "c1", PurchaseTimestamp: time.Date(2021, 3, 5, 8, 0, 0, 0, time.UTC)},
		{OrderID: "o2", CustomerID: "c2", PurchaseTimestamp: time.Date(2021, 3, 5, 9, 0, 0, 0, time.UTC)},
	}
	items := []OrderItem{
		{OrderID: "o1", ProductID: "p1", Price: dec("12.34")},
		{OrderID: "o1", ProductID: "p2", Price: dec("56.78")},
		{OrderID: "o2", ProductID: "p3", Price: dec("90.12")},
		{OrderID: "o2", ProductID: "p4", Price: dec("3.45")},
	}
	products := []Product{
		{ProductID: "p1", Category: strPtr("a")},
		{ProductID: "p2", Category: strPtr("b")},
		{ProductID: "p3", Category: strPtr("c")},
		{ProductID: "p4", Category: strPtr("d")},
	}

	lines := ExtractOrderLines(orders, items, products)
	totals := AggregateDailyTotals(lines)
	ranked := RankCategories(lines)

	require.Len(t, totals, 1)
	sum := dec("0")
	for _, rc := range ranked {
		sum = sum.Add(rc.CategoryRevenue)
	}
	assert.True(t, totals[0].TotalRevenue.Equal(sum), "daily total %s vs category sum %s", totals[0].TotalRevenue, sum)
}

func TestBuildReport_Idempotent(t *testing.T) {
	orders := []Order{
		{OrderID: "o1", CustomerID: "c1", PurchaseTimestamp: time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)},
		{OrderID: "o2", CustomerID: "c2", PurchaseTimestamp: time.Date(2021, 1, 2, 11, 0, 0, 0, time.UTC)},
	}
	items := []OrderItem{
		{OrderID: "o1", ProductID: "p1", Price: dec("9.99")},
		{OrderID: "o2", ProductID: "p1", Price: dec("9.99")},
		{OrderID: "o2", ProductID: "p2", Price: dec("19.99")},
	}
	products := []Product{
		{ProductID: "p1", Category: strPtr("books")},
		{ProductID: "p2", Category: strPtr("music")},
	}

	first := BuildReport(orders, items, products)
	second := BuildReport(orders, items, products)
	assert.Equal(t, first, second)
}

func TestBuildReport_EmptyInput(t *testing.T) {
	rows := BuildReport(nil, nil, nil)
	assert.Empty(t, rows)
}
