package analytics

import (
	"sort"
	"time"

	"github.com/anujm4467/trading-journel-sub000/pkg/utils"
)

type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityWeekday Granularity = "weekday"
)

// PeriodBucket is one calendar grouping of trade outcomes.
type PeriodBucket struct {
	Label        string  `json:"label"`
	Pnl          float64 `json:"pnl"`
	TradeCount   int     `json:"tradeCount"`
	WinningCount int     `json:"winningCount"`
	LosingCount  int     `json:"losingCount"`

	start time.Time
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// BucketOutcomes groups outcomes into calendar buckets.
// Day, week and month buckets key on the exit date, so only closed trades
// contribute, and are ordered chronologically ascending. Weekday buckets key
// on the entry date and always emit all seven Monday..Sunday buckets so
// weekday comparisons stay stable on sparse data.
func BucketOutcomes(outcomes []TradeOutcome, granularity Granularity) []PeriodBucket {
	if granularity == GranularityWeekday {
		return bucketByWeekday(outcomes)
	}

	byStart := make(map[time.Time]*PeriodBucket)

	for _, outcome := range outcomes {
		if outcome.ExitDate == nil {
			continue
		}

		start, label := bucketKey(*outcome.ExitDate, granularity)
		bucket, ok := byStart[start]
		if !ok {
			bucket = &PeriodBucket{Label: label, start: start}
			byStart[start] = bucket
		}
		accumulate(bucket, outcome)
	}

	buckets := make([]PeriodBucket, 0, len(byStart))
	for _, bucket := range byStart {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].start.Before(buckets[j].start)
	})

	return buckets
}

func bucketByWeekday(outcomes []TradeOutcome) []PeriodBucket {
	byDay := make(map[time.Weekday]*PeriodBucket, 7)
	buckets := make([]PeriodBucket, 0, 7)

	// Zero-filled fixed Monday..Sunday order regardless of input order.
	for _, day := range weekdayOrder {
		byDay[day] = &PeriodBucket{Label: day.String()}
	}
	for _, outcome := range outcomes {
		accumulate(byDay[outcome.EntryDate.Weekday()], outcome)
	}
	for _, day := range weekdayOrder {
		buckets = append(buckets, *byDay[day])
	}

	return buckets
}

func bucketKey(t time.Time, granularity Granularity) (time.Time, string) {
	switch granularity {
	case GranularityWeek:
		start := utils.StartOfWeek(t)
		end := start.AddDate(0, 0, 6)
		return start, start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
	case GranularityMonth:
		start := utils.StartOfMonth(t)
		return start, start.Format("January 2006")
	default:
		start := utils.StartOfDay(t)
		return start, start.Format("2006-01-02")
	}
}

func accumulate(bucket *PeriodBucket, outcome TradeOutcome) {
	bucket.Pnl += outcome.NetPnl
	bucket.TradeCount++
	if outcome.NetPnl > 0 {
		bucket.WinningCount++
	} else if outcome.NetPnl < 0 {
		bucket.LosingCount++
	}
}

// MostProfitable picks the bucket with the highest P&L among buckets holding
// at least one trade. Ties go to the earliest bucket in chronological order.
func MostProfitable(buckets []PeriodBucket) *PeriodBucket {
	var best *PeriodBucket
	for i := range buckets {
		if buckets[i].TradeCount == 0 {
			continue
		}
		if best == nil || buckets[i].Pnl > best.Pnl {
			best = &buckets[i]
		}
	}
	return best
}

// MostLosing is the symmetric minimum-P&L selection.
func MostLosing(buckets []PeriodBucket) *PeriodBucket {
	var worst *PeriodBucket
	for i := range buckets {
		if buckets[i].TradeCount == 0 {
			continue
		}
		if worst == nil || buckets[i].Pnl < worst.Pnl {
			worst = &buckets[i]
		}
	}
	return worst
}
