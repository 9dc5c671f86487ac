package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
)

// timestampLayout is how order_purchase_timestamp is stored. All values
// are UTC.
const timestampLayout = "2006-01-02 15:04:05"

// Storage provides SQLite database access to the input relations.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db}

	// Run all pending migrations
	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// LoadOrders returns every order in the store.
func (s *Storage) LoadOrders() ([]report.Order, error) {
	rows, err := s.db.Query(`SELECT order_id, customer_id, order_purchase_timestamp FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []report.Order
	for rows.Next() {
		var o report.Order
		var ts string
		if err := rows.Scan(&o.OrderID, &o.CustomerID, &ts); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.PurchaseTimestamp, err = time.ParseInLocation(timestampLayout, ts, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("order %s: bad order_purchase_timestamp %q: %w", o.OrderID, ts, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// LoadOrderItems returns every order line item in the store.
func (s *Storage) LoadOrderItems() ([]report.OrderItem, error) {
	rows, err := s.db.Query(`SELECT order_id, product_id, price FROM order_items`)
	if err != nil {
		return nil, fmt.Errorf("query order_items: %w", err)
	}
	defer rows.Close()

	var items []report.OrderItem
	for rows.Next() {
		var item report.OrderItem
		var price string
		if err := rows.Scan(&item.OrderID, &item.ProductID, &price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("order %s: bad price %q: %w", item.OrderID, price, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// LoadProducts returns every product in the store.
func (s *Storage) LoadProducts() ([]report.Product, error) {
	rows, err := s.db.Query(`SELECT product_id, product_category_name FROM products`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []report.Product
	for rows.Next() {
		var p report.Product
		var category sql.NullString
		if err := rows.Scan(&p.ProductID, &category); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if category.Valid {
			p.Category = &category.String
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// InsertOrders appends orders in a single transaction.
func (s *Storage) InsertOrders(orders []report.Order) error {
	return s.insertBatch(`INSERT OR REPLACE INTO orders (order_id, customer_id, order_purchase_timestamp) VALUES (?, ?, ?)`,
		len(orders), func(i int) []any {
			o := orders[i]
			return []any{o.OrderID, o.CustomerID, o.PurchaseTimestamp.UTC().Format(timestampLayout)}
		})
}

// InsertOrderItems appends order items in a single transaction.
func (s *Storage) InsertOrderItems(items []report.OrderItem) error {
	return s.insertBatch(`INSERT INTO order_items (order_id, product_id, price) VALUES (?, ?, ?)`,
		len(items), func(i int) []any {
			item := items[i]
			return []any{item.OrderID, item.ProductID, item.Price.String()}
		})
}

// InsertProducts appends products in a single transaction.
func (s *Storage) InsertProducts(products []report.Product) error {
	return s.insertBatch(`INSERT OR REPLACE INTO products (product_id, product_category_name) VALUES (?, ?)`,
		len(products), func(i int) []any {
			p := products[i]
			var category any
			if p.Category != nil {
				category = *p.Category
			}
			return []any{p.ProductID, category}
		})
}

func (s *Storage) insertBatch(query string, n int, args func(i int) []any) error {
	if n == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			return err
		}
	}
	return tx.Commit()
}
