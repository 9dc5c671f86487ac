package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCategories_RanksByRevenueDescending(t *testing.T) {
	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	lines := []OrderLine{
		line(day, strPtr("books"), "o1", "c1", "50.00"),
		line(day, strPtr("electronics"), "o1", "c1", "60.00"),
		line(day, strPtr("electronics"), "o2", "c2", "40.00"),
		line(day, strPtr("toys"), "o2", "c2", "10.00"),
	}

	ranked := RankCategories(lines)
	require.Len(t, ranked, 3)

	assert.Equal(t, "electronics", ranked[0].Category)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.True(t, ranked[0].CategoryRevenue.Equal(dec("100.00")))

	assert.Equal(t, "books", ranked[1].Category)
	assert.Equal(t, 2, ranked[1].Rank)

	assert.Equal(t, "toys", ranked[2].Category)
	assert.Equal(t, 3, ranked[2].Rank)

	// Day revenue covers all categories, not just the top ones.
	for _, rc := range ranked {
		assert.True(t, rc.DayRevenue.Equal(dec("160.00")), "day revenue for %s", rc.Category)
	}
}

func TestRankCategories_TieBreaksOnNameAscending(t *testing.T) {
	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	lines := []OrderLine{
		line(day, strPtr("zebra"), "o1", "c1", "25.00"),
		line(day, strPtr("apple"), "o2", "c2", "25.00"),
	}

	// Run repeatedly: equal-revenue categories must never swap between runs.
	for i := 0; i < 20; i++ {
		ranked := RankCategories(lines)
		require.Len(t, ranked, 2)
		assert.Equal(t, "apple", ranked[0].Category)
		assert.Equal(t, 1, ranked[0].Rank)
		assert.Equal(t, "zebra", ranked[1].Category)
		assert.Equal(t, 2, ranked[1].Rank)
	}
}

func TestRankCategories_RanksAreContiguousPerDate(t *testing.T) {
	jan1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)

	lines := []OrderLine{
		line(jan1, strPtr("a"), "o1", "c1", "10.00"),
		line(jan1, strPtr("b"), "o1", "c1", "20.00"),
		line(jan1, strPtr("c"), "o1", "c1", "30.00"),
		line(jan1, strPtr("d"), "o1", "c1", "40.00"),
		line(jan2, strPtr("a"), "o2", "c2", "5.00"),
	}

	ranked := RankCategories(lines)

	perDate := make(map[time.Time][]int)
	for _, rc := range ranked {
		perDate[rc.PurchaseDate] = append(perDate[rc.PurchaseDate], rc.Rank)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, perDate[jan1])
	assert.Equal(t, []int{1}, perDate[jan2])

	// Revenue is non-increasing as rank increases.
	var prev RankedCategory
	for _, rc := range ranked {
		if rc.PurchaseDate == jan1 && rc.Rank > 1 {
			assert.True(t, rc.CategoryRevenue.LessThanOrEqual(prev.CategoryRevenue))
		}
		prev = rc
	}
}

func TestRankCategories_SharesSumToOne(t *testing.T) {
	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	lines := []OrderLine{
		line(day, strPtr("a"), "o1", "c1", "33.33"),
		line(day, strPtr("b"), "o1", "c1", "33.33"),
		line(day, strPtr("c"), "o1", "c1", "33.34"),
	}

	ranked := RankCategories(lines)
	require.Len(t, ranked, 3)

	sum := decimal.Zero
	for _, rc := range ranked {
		sum = sum.Add(rc.RevenueShare)
	}
	one := decimal.NewFromInt(1)
	assert.True(t, sum.Sub(one).Abs().LessThan(dec("0.000001")), "shares sum to %s", sum)
}

func TestRankCategories_ExcludesNilCategory(t *testing.T) {
	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	lines := []OrderLine{
		line(day, strPtr("books"), "o1", "c1", "60.00"),
		line(day, nil, "o1", "c1", "40.00"),
	}

	ranked := RankCategories(lines)
	require.Len(t, ranked, 1)
	assert.Equal(t, "books", ranked[0].Category)
	// Uncategorized revenue is excluded from the share denominator.
	assert.True(t, ranked[0].DayRevenue.Equal(dec("60.00")))
	assert.True(t, ranked[0].RevenueShare.Equal(dec("1")), "share is %s", ranked[0].RevenueShare)
}

func TestRankCategories_OnlyNilCategories(t *testing.T) {
	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	lines := []OrderLine{
		line(day, nil, "o1", "c1", "40.00"),
	}
	assert.Empty(t, RankCategories(lines))
}
