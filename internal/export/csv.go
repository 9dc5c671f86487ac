// Package export writes the final report as CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
)

// Header is the report's fixed column set, in output order.
var Header = []string{
	"purchase_date",
	"total_orders",
	"total_customers",
	"total_revenue",
	"average_revenue_per_order",
	"top_1_category",
	"top_1_percent_revenue",
	"top_2_category",
	"top_2_percent_revenue",
	"top_3_category",
	"top_3_percent_revenue",
}

// WriteCSV writes the report rows to w with a header row. Decimal columns
// are rendered with two decimal places; empty top-k slots become empty
// cells.
func WriteCSV(w io.Writer, rows []report.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.PurchaseDate.Format(report.DateFormat),
			strconv.Itoa(row.TotalOrders),
			strconv.Itoa(row.TotalCustomers),
			row.TotalRevenue.StringFixed(2),
			row.AvgRevenuePerOrder.StringFixed(2),
			stringOrEmpty(row.Top1Category),
			decimalOrEmpty(row.Top1PercentRevenue),
			stringOrEmpty(row.Top2Category),
			decimalOrEmpty(row.Top2PercentRevenue),
			stringOrEmpty(row.Top3Category),
			decimalOrEmpty(row.Top3PercentRevenue),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func decimalOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
