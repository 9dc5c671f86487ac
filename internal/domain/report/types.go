// Package report implements the daily sales report pipeline.
//
// The pipeline runs in five stages over the three input relations:
//
//	orders + order_items + products
//	        │ (1) extract: inner-join into one flat row per purchased item
//	        ▼
//	   order lines ──(2) daily totals──┐
//	        │                          │
//	        └──(3) category ranking    │
//	                │                  │
//	          (4) top-3 reshape        │
//	                │                  │
//	                └───(5) join───────┘
//	                        │
//	                        ▼
//	                   report rows
//
// Stages 2 and 3 both consume the order lines and are independent; the
// pipeline computes them concurrently and joins their results in stage 5.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a raw order record from the input store.
type Order struct {
	OrderID           string
	CustomerID        string
	PurchaseTimestamp time.Time
}

// OrderItem is a raw order line item from the input store.
type OrderItem struct {
	OrderID   string
	ProductID string
	Price     decimal.Decimal
}

// Product is a raw product record from the input store.
// Category is nil when the product has no category assigned.
type Product struct {
	ProductID string
	Category  *string
}

// OrderLine is one purchased item joined with its order and product.
// PurchaseDate is the order's purchase timestamp truncated to a UTC
// calendar date; it is the grouping key for every downstream stage.
type OrderLine struct {
	PurchaseDate time.Time
	Category     *string
	OrderID      string
	CustomerID   string
	ItemPrice    decimal.Decimal
}

// DailyTotals aggregates order lines for a single purchase date.
// Orders and customers are counted distinct: an order contributing
// several line items counts once.
type DailyTotals struct {
	PurchaseDate   time.Time
	TotalOrders    int
	TotalCustomers int
	TotalRevenue   decimal.Decimal
}

// RankedCategory is one category's revenue for one date, ranked within
// that date. Rank 1 is the highest revenue; ties break on category name
// ascending. DayRevenue sums category revenue across all categories for
// the date, not just the top 3.
type RankedCategory struct {
	PurchaseDate    time.Time
	Category        string
	CategoryRevenue decimal.Decimal
	Rank            int
	DayRevenue      decimal.Decimal
	RevenueShare    decimal.Decimal
}

// CategorySlot is one of the fixed top-3 slots in a TopCategoriesRow.
type CategorySlot struct {
	Category string
	Share    decimal.Decimal
}

// TopCategoriesRow pivots a date's ranked categories into fixed slots.
// Slots beyond the number of distinct categories that day are nil.
type TopCategoriesRow struct {
	PurchaseDate time.Time
	Top1         *CategorySlot
	Top2         *CategorySlot
	Top3         *CategorySlot
}

// ReportRow is one row of the final report. Revenue figures are rounded
// to two decimals; the top-k fields are nil when fewer than k distinct
// categories were sold that day.
type ReportRow struct {
	PurchaseDate       time.Time
	TotalOrders        int
	TotalCustomers     int
	TotalRevenue       decimal.Decimal
	AvgRevenuePerOrder decimal.Decimal
	Top1Category       *string
	Top1PercentRevenue *decimal.Decimal
	Top2Category       *string
	Top2PercentRevenue *decimal.Decimal
	Top3Category       *string
	Top3PercentRevenue *decimal.Decimal
}

// DateFormat is the wire format for purchase dates in CSV and JSON output.
const DateFormat = "2006-01-02"
