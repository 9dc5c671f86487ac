package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// reportScale is the number of decimal places in the final report.
// Rounding is half away from zero (decimal.Decimal's Round), so 0.675
// rounds to 0.68 and -0.675 to -0.68.
const reportScale = 2

// JoinReport inner-joins daily totals with the reshaped top categories on
// purchase date and produces the final report rows, sorted ascending by
// date. Average revenue per order divides total revenue by the distinct
// order count, which is at least one for any date present in the totals.
//
// By construction every date with categorized order lines appears on both
// sides. A date whose entire revenue came from uncategorized products has
// totals but no category row and is dropped by the join.
func JoinReport(totals []DailyTotals, topCategories []TopCategoriesRow) []ReportRow {
	topByDate := make(map[time.Time]TopCategoriesRow, len(topCategories))
	for _, row := range topCategories {
		topByDate[row.PurchaseDate] = row
	}

	rows := make([]ReportRow, 0, len(totals))
	for _, day := range totals {
		top, ok := topByDate[day.PurchaseDate]
		if !ok {
			continue
		}
		row := ReportRow{
			PurchaseDate:       day.PurchaseDate,
			TotalOrders:        day.TotalOrders,
			TotalCustomers:     day.TotalCustomers,
			TotalRevenue:       day.TotalRevenue.Round(reportScale),
			AvgRevenuePerOrder: day.TotalRevenue.DivRound(decimal.NewFromInt(int64(day.TotalOrders)), reportScale),
		}
		row.Top1Category, row.Top1PercentRevenue = slotColumns(top.Top1)
		row.Top2Category, row.Top2PercentRevenue = slotColumns(top.Top2)
		row.Top3Category, row.Top3PercentRevenue = slotColumns(top.Top3)
		rows = append(rows, row)
	}
	// Totals arrive date-sorted and the join preserves their order.
	return rows
}

func slotColumns(slot *CategorySlot) (*string, *decimal.Decimal) {
	if slot == nil {
		return nil, nil
	}
	category := slot.Category
	share := slot.Share.Round(reportScale)
	return &category, &share
}
