// Package validator provides schema validation for the pipeline inputs.
//
// The input relations come from an upstream store the pipeline does not
// control. Referential gaps between relations are handled by the join
// semantics downstream, but a record missing a required field or carrying
// a nonsense value is a structural problem the pipeline refuses to run on.
package validator

import (
	"fmt"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
)

// ValidateInputs checks the three input relations against their schema
// contract. It returns the first violation found, identifying the
// relation, the offending record's position, and the field.
func ValidateInputs(orders []report.Order, items []report.OrderItem, products []report.Product) error {
	for i, o := range orders {
		if o.OrderID == "" {
			return fmt.Errorf("orders[%d]: missing order_id", i)
		}
		if o.CustomerID == "" {
			return fmt.Errorf("orders[%d] (order_id=%s): missing customer_id", i, o.OrderID)
		}
		if o.PurchaseTimestamp.IsZero() {
			return fmt.Errorf("orders[%d] (order_id=%s): missing order_purchase_timestamp", i, o.OrderID)
		}
	}
	for i, item := range items {
		if item.OrderID == "" {
			return fmt.Errorf("order_items[%d]: missing order_id", i)
		}
		if item.ProductID == "" {
			return fmt.Errorf("order_items[%d] (order_id=%s): missing product_id", i, item.OrderID)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("order_items[%d] (order_id=%s): negative price %s", i, item.OrderID, item.Price)
		}
	}
	for i, p := range products {
		if p.ProductID == "" {
			return fmt.Errorf("products[%d]: missing product_id", i)
		}
		if p.Category != nil && *p.Category == "" {
			return fmt.Errorf("products[%d] (product_id=%s): empty category (use null for uncategorized)", i, p.ProductID)
		}
	}
	return nil
}
