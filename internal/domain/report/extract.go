package report

import "time"

// ExtractOrderLines inner-joins orders, items, and products into one flat
// row per purchased item. Items whose order_id or product_id has no match
// are dropped, matching the join semantics of the upstream warehouse query:
// referential gaps are a data-quality signal for the data owner, not a
// pipeline fault.
//
// The purchase timestamp is truncated to a UTC calendar date here; no
// later stage sees time-of-day. Output order is unspecified.
func ExtractOrderLines(orders []Order, items []OrderItem, products []Product) []OrderLine {
	ordersByID := make(map[string]Order, len(orders))
	for _, o := range orders {
		ordersByID[o.OrderID] = o
	}
	productsByID := make(map[string]Product, len(products))
	for _, p := range products {
		productsByID[p.ProductID] = p
	}

	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		order, ok := ordersByID[item.OrderID]
		if !ok {
			continue
		}
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, OrderLine{
			PurchaseDate: truncateToDate(order.PurchaseTimestamp),
			Category:     product.Category,
			OrderID:      order.OrderID,
			CustomerID:   order.CustomerID,
			ItemPrice:    item.Price,
		})
	}
	return lines
}

// truncateToDate drops the time-of-day portion, keeping a UTC midnight.
func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
