package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedOutcome(entry, exit time.Time, net float64) TradeOutcome {
	return TradeOutcome{
		EntryDate: entry,
		ExitDate:  &exit,
		GrossPnl:  net,
		NetPnl:    net,
	}
}

func TestBucketOutcomes_WeekdayAlwaysSevenBuckets(t *testing.T) {
	buckets := BucketOutcomes(nil, GranularityWeekday)

	require.Len(t, buckets, 7)
	assert.Equal(t, "Monday", buckets[0].Label)
	assert.Equal(t, "Sunday", buckets[6].Label)
	for _, bucket := range buckets {
		assert.Zero(t, bucket.TradeCount)
		assert.Zero(t, bucket.Pnl)
	}
}

func TestBucketOutcomes_WeekdayKeysOnEntryDate(t *testing.T) {
	// Entered Monday 2025-06-02, exited Wednesday: counts under Monday.
	entry := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	exit := time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

	buckets := BucketOutcomes([]TradeOutcome{
		closedOutcome(entry, exit, 150),
		closedOutcome(entry.AddDate(0, 0, 4), exit.AddDate(0, 0, 4), -60), // Friday entry
	}, GranularityWeekday)

	require.Len(t, buckets, 7)
	assert.Equal(t, 1, buckets[0].TradeCount, "Monday")
	assert.Equal(t, 150.0, buckets[0].Pnl)
	assert.Equal(t, 1, buckets[4].TradeCount, "Friday")
	assert.Equal(t, 1, buckets[4].LosingCount)
	assert.Zero(t, buckets[2].TradeCount, "Wednesday exit must not count")
}

func TestBucketOutcomes_DayExcludesOpenTradesAndSortsAscending(t *testing.T) {
	day1 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)

	open := TradeOutcome{EntryDate: day1, NetPnl: 999, Open: true}

	buckets := BucketOutcomes([]TradeOutcome{
		closedOutcome(day1, day2, -40), // exits later, listed first
		closedOutcome(day1, day1, 100),
		open,
	}, GranularityDay)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-06-02", buckets[0].Label)
	assert.Equal(t, 100.0, buckets[0].Pnl)
	assert.Equal(t, "2025-06-05", buckets[1].Label)
	assert.Equal(t, -40.0, buckets[1].Pnl)
}

func TestBucketOutcomes_WeekAnchorsToSunday(t *testing.T) {
	// Wednesday 2025-06-04 belongs to the Sunday-start week of 2025-06-01.
	exit := time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC)

	buckets := BucketOutcomes([]TradeOutcome{closedOutcome(exit.AddDate(0, 0, -2), exit, 75)}, GranularityWeek)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-06-01 to 2025-06-07", buckets[0].Label)
}

func TestBucketOutcomes_MonthGrouping(t *testing.T) {
	june := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)

	buckets := BucketOutcomes([]TradeOutcome{
		closedOutcome(june, june, 100),
		closedOutcome(june, june.AddDate(0, 0, 5), 50),
		closedOutcome(july, july, -30),
	}, GranularityMonth)

	require.Len(t, buckets, 2)
	assert.Equal(t, "June 2025", buckets[0].Label)
	assert.Equal(t, 150.0, buckets[0].Pnl)
	assert.Equal(t, 2, buckets[0].TradeCount)
	assert.Equal(t, "July 2025", buckets[1].Label)
}

func TestMostProfitableAndMostLosing(t *testing.T) {
	buckets := []PeriodBucket{
		{Label: "June 2025", Pnl: 100, TradeCount: 2},
		{Label: "July 2025", Pnl: 100, TradeCount: 1},
		{Label: "August 2025", Pnl: -80, TradeCount: 1},
		{Label: "September 2025", Pnl: 0, TradeCount: 0},
	}

	best := MostProfitable(buckets)
	require.NotNil(t, best)
	assert.Equal(t, "June 2025", best.Label, "ties go to the first chronological bucket")

	worst := MostLosing(buckets)
	require.NotNil(t, worst)
	assert.Equal(t, "August 2025", worst.Label)

	assert.Nil(t, MostProfitable([]PeriodBucket{{TradeCount: 0}}), "empty buckets never selected")
	assert.Nil(t, MostLosing(nil))
}
