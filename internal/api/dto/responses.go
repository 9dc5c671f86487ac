// Package dto defines the JSON shapes served by the report API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eshaffer321/sales-report-backend/internal/application/service"
	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthResponse creates a healthy response.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: "healthy"}
}

// ReportRowResponse is one report row. The top-k fields are null when the
// day had fewer than k distinct categories.
type ReportRowResponse struct {
	PurchaseDate       string           `json:"purchase_date"`
	TotalOrders        int              `json:"total_orders"`
	TotalCustomers     int              `json:"total_customers"`
	TotalRevenue       decimal.Decimal  `json:"total_revenue"`
	AvgRevenuePerOrder decimal.Decimal  `json:"average_revenue_per_order"`
	Top1Category       *string          `json:"top_1_category"`
	Top1PercentRevenue *decimal.Decimal `json:"top_1_percent_revenue"`
	Top2Category       *string          `json:"top_2_category"`
	Top2PercentRevenue *decimal.Decimal `json:"top_2_percent_revenue"`
	Top3Category       *string          `json:"top_3_category"`
	Top3PercentRevenue *decimal.Decimal `json:"top_3_percent_revenue"`
}

// ReportResponse wraps a computed report with its run provenance.
type ReportResponse struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Count       int                 `json:"count"`
	Rows        []ReportRowResponse `json:"rows"`
}

// NewReportResponse converts a service run result to the wire shape.
func NewReportResponse(result *service.RunResult) ReportResponse {
	rows := make([]ReportRowResponse, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, newReportRowResponse(row))
	}
	return ReportResponse{
		RunID:       result.RunID,
		GeneratedAt: result.GeneratedAt,
		Count:       len(rows),
		Rows:        rows,
	}
}

func newReportRowResponse(row report.ReportRow) ReportRowResponse {
	return ReportRowResponse{
		PurchaseDate:       row.PurchaseDate.Format(report.DateFormat),
		TotalOrders:        row.TotalOrders,
		TotalCustomers:     row.TotalCustomers,
		TotalRevenue:       row.TotalRevenue,
		AvgRevenuePerOrder: row.AvgRevenuePerOrder,
		Top1Category:       row.Top1Category,
		Top1PercentRevenue: row.Top1PercentRevenue,
		Top2Category:       row.Top2Category,
		Top2PercentRevenue: row.Top2PercentRevenue,
		Top3Category:       row.Top3Category,
		Top3PercentRevenue: row.Top3PercentRevenue,
	}
}
