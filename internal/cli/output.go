// Package cli provides shared console output helpers for the command-line
// tools.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/eshaffer321/sales-report-backend/internal/application/service"
)

// PrintHeader prints the tool header
func PrintHeader(tool string) {
	fmt.Printf("sales-report: %s\n", tool)
}

// PrintRunSummary prints what a report run read and produced
func PrintRunSummary(result *service.RunResult) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Run %s: orders=%d items=%d products=%d report_rows=%d (%s)\n",
		result.RunID,
		result.OrdersRead,
		result.ItemsRead,
		result.ProductsRead,
		len(result.Rows),
		result.Duration.Round(time.Millisecond))
}

// PrintImportSummary prints per-file import counts
func PrintImportSummary(counts map[string]int) {
	fmt.Println(strings.Repeat("-", 60))
	for file, n := range counts {
		fmt.Printf("Imported %d rows from %s\n", n, file)
	}
}
