// Package handlers contains the gin handlers for the report API.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/sales-report-backend/internal/api/dto"
	"github.com/eshaffer321/sales-report-backend/internal/application/service"
	"github.com/eshaffer321/sales-report-backend/internal/domain/report"
	"github.com/eshaffer321/sales-report-backend/internal/export"
)

// ReportHandler serves the daily sales report.
type ReportHandler struct {
	svc    *service.ReportService
	logger *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc *service.ReportService, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Get handles GET /api/report. Optional start_date and end_date query
// parameters (YYYY-MM-DD, inclusive) restrict the returned date range.
func (h *ReportHandler) Get(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	result, err := h.svc.RunRange(start, end)
	if err != nil {
		h.logger.Error("report computation failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(result))
}

// GetCSV handles GET /api/report/csv, streaming the report as a CSV
// download with the same optional date-range filters as Get.
func (h *ReportHandler) GetCSV(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return
	}

	result, err := h.svc.RunRange(start, end)
	if err != nil {
		h.logger.Error("report computation failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="daily_sales_report.csv"`)
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, result.Rows); err != nil {
		h.logger.Error("csv write failed", "error", err, "run_id", result.RunID)
	}
}

func parseDateRange(c *gin.Context) (start, end *time.Time, err error) {
	if v := c.Query("start_date"); v != "" {
		t, perr := time.ParseInLocation(report.DateFormat, v, time.UTC)
		if perr != nil {
			return nil, nil, fmt.Errorf("start_date must be YYYY-MM-DD")
		}
		start = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, perr := time.ParseInLocation(report.DateFormat, v, time.UTC)
		if perr != nil {
			return nil, nil, fmt.Errorf("end_date must be YYYY-MM-DD")
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("end_date is before start_date")
	}
	return start, end, nil
}
