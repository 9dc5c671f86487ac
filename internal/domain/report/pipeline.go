package report

import "sync"

// BuildReport runs the full pipeline over the three input relations and
// returns the report rows sorted by date ascending. Inputs are read-only;
// every intermediate collection is produced once and never mutated after.
//
// Daily totals and category ranking both reduce the same order lines and
// share no state, so they run concurrently and meet again at the join.
// Empty input yields an empty report, not an error.
func BuildReport(orders []Order, items []OrderItem, products []Product) []ReportRow {
	lines := ExtractOrderLines(orders, items, products)

	var (
		totals []DailyTotals
		top    []TopCategoriesRow
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		totals = AggregateDailyTotals(lines)
	}()
	go func() {
		defer wg.Done()
		top = ReshapeTopCategories(RankCategories(lines))
	}()
	wg.Wait()

	return JoinReport(totals, top)
}
