package report

import (
	"sort"
	"time"
)

// topSlots is fixed: the report format defines exactly three category
// columns. Extending to top-N would change the output schema.
const topSlots = 3

// ReshapeTopCategories pivots ranked categories into one row per date with
// fixed top-1/2/3 slots. Only ranks 1 through 3 are kept; a date with fewer
// distinct categories gets nil in the unfilled slots but still produces a
// row. Every date that had at least one ranked category appears exactly
// once in the output, sorted ascending.
func ReshapeTopCategories(ranked []RankedCategory) []TopCategoriesRow {
	slots := make(map[time.Time][]*CategorySlot)
	for _, rc := range ranked {
		if rc.Rank > topSlots {
			continue
		}
		row, ok := slots[rc.PurchaseDate]
		if !ok {
			row = make([]*CategorySlot, topSlots)
			slots[rc.PurchaseDate] = row
		}
		row[rc.Rank-1] = &CategorySlot{Category: rc.Category, Share: rc.RevenueShare}
	}

	rows := make([]TopCategoriesRow, 0, len(slots))
	for date, row := range slots {
		rows = append(rows, TopCategoriesRow{
			PurchaseDate: date,
			Top1:         row[0],
			Top2:         row[1],
			Top3:         row[2],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PurchaseDate.Before(rows[j].PurchaseDate)
	})
	return rows
}
