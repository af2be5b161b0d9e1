package analytics

import (
	"time"

	"github.com/anujm4467/trading-journel-sub000/pkg/utils"
)

const (
	RangeToday   = "today"
	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeQuarter = "quarter"
	RangeYear    = "year"
	RangeAll     = "all"
)

// TimeRange is a resolved date window. A zero From means no lower bound.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// Filter is the declarative selection applied before aggregation.
// Either Keyword or an explicit From/To pair selects the time window.
type Filter struct {
	Keyword    string
	From       *time.Time
	To         *time.Time
	Instrument *Instrument
	Strategies []string

	// Granularity drives the period analysis breakdown; defaults to month.
	Granularity Granularity
}

// ResolveTimeRange turns the filter's time selection into a concrete window
// relative to the caller-supplied now. An explicit range is normalized to
// whole calendar days. An unknown keyword falls back to all: showing some
// data beats failing the whole aggregation.
func ResolveTimeRange(f Filter, now time.Time) TimeRange {
	if f.From != nil && f.To != nil {
		return TimeRange{
			From: utils.StartOfDay(*f.From),
			To:   utils.EndOfDay(*f.To),
		}
	}

	switch f.Keyword {
	case RangeToday:
		return TimeRange{From: utils.StartOfDay(now), To: now}
	case RangeWeek:
		return TimeRange{From: now.AddDate(0, 0, -7), To: now}
	case RangeMonth:
		return TimeRange{From: utils.StartOfMonth(now), To: now}
	case RangeQuarter:
		return TimeRange{From: utils.StartOfQuarter(now), To: now}
	case RangeYear:
		return TimeRange{From: utils.StartOfYear(now), To: now}
	default:
		return TimeRange{To: now}
	}
}

// matchesRecord applies the instrument and strategy predicates. These are
// independent of the time filter.
func (f Filter) matchesRecord(record Record) bool {
	if f.Instrument != nil && record.Leg.Instrument != *f.Instrument {
		return false
	}
	if len(f.Strategies) > 0 && !utils.ContainsString(f.Strategies, record.Strategy) {
		return false
	}
	return true
}
