package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// sharePrecision is the number of decimal places kept for revenue shares
// inside the pipeline. Rounding to two places happens only at the report
// boundary.
const sharePrecision = 8

// RankCategories groups order lines by (date, category), sums revenue per
// pair, and ranks the categories within each date by revenue descending.
// Ties break on category name ascending so output never depends on input
// order. Ranks are dense: 1..K with no gaps for a date with K categories.
//
// Lines with a nil category carry revenue for daily totals but no category
// to rank, so they are skipped here; DayRevenue and the shares derived from
// it cover categorized revenue only.
//
// Output is sorted by date ascending, then rank ascending.
func RankCategories(lines []OrderLine) []RankedCategory {
	type key struct {
		date     time.Time
		category string
	}
	revenue := make(map[key]decimal.Decimal)
	for _, line := range lines {
		if line.Category == nil {
			continue
		}
		k := key{date: line.PurchaseDate, category: *line.Category}
		revenue[k] = revenue[k].Add(line.ItemPrice)
	}

	byDate := make(map[time.Time][]RankedCategory)
	for k, rev := range revenue {
		byDate[k.date] = append(byDate[k.date], RankedCategory{
			PurchaseDate:    k.date,
			Category:        k.category,
			CategoryRevenue: rev,
		})
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	ranked := make([]RankedCategory, 0, len(revenue))
	for _, date := range dates {
		partition := byDate[date]
		sort.Slice(partition, func(i, j int) bool {
			cmp := partition[i].CategoryRevenue.Cmp(partition[j].CategoryRevenue)
			if cmp != 0 {
				return cmp > 0
			}
			return partition[i].Category < partition[j].Category
		})

		dayRevenue := decimal.Zero
		for _, rc := range partition {
			dayRevenue = dayRevenue.Add(rc.CategoryRevenue)
		}

		for i := range partition {
			partition[i].Rank = i + 1
			partition[i].DayRevenue = dayRevenue
			// Zero day revenue only happens when every item that day was
			// free; shares are zero rather than undefined.
			if !dayRevenue.IsZero() {
				partition[i].RevenueShare = partition[i].CategoryRevenue.DivRound(dayRevenue, sharePrecision)
			}
		}
		ranked = append(ranked, partition...)
	}
	return ranked
}
