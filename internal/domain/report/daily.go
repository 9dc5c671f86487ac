package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type dailyAccumulator struct {
	orders    map[string]struct{}
	customers map[string]struct{}
	revenue   decimal.Decimal
}

// AggregateDailyTotals groups order lines by purchase date and produces
// one DailyTotals per date. Order and customer counts are distinct counts,
// so a three-item order contributes one order, not three. Revenue includes
// every line, categorized or not.
//
// Output is sorted ascending by date so downstream consumers and tests see
// a deterministic order.
func AggregateDailyTotals(lines []OrderLine) []DailyTotals {
	acc := make(map[time.Time]*dailyAccumulator)
	for _, line := range lines {
		day, ok := acc[line.PurchaseDate]
		if !ok {
			day = &dailyAccumulator{
				orders:    make(map[string]struct{}),
				customers: make(map[string]struct{}),
			}
			acc[line.PurchaseDate] = day
		}
		day.orders[line.OrderID] = struct{}{}
		day.customers[line.CustomerID] = struct{}{}
		day.revenue = day.revenue.Add(line.ItemPrice)
	}

	totals := make([]DailyTotals, 0, len(acc))
	for date, day := range acc {
		totals = append(totals, DailyTotals{
			PurchaseDate:   date,
			TotalOrders:    len(day.orders),
			TotalCustomers: len(day.customers),
			TotalRevenue:   day.revenue,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].PurchaseDate.Before(totals[j].PurchaseDate)
	})
	return totals
}
