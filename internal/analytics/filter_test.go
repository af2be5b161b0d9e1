package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anujm4467/trading-journel-sub000/pkg/utils"
)

func TestResolveTimeRange_Keywords(t *testing.T) {
	// Friday 2025-08-15, mid-quarter, mid-year.
	now := time.Date(2025, 8, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		keyword  string
		wantFrom time.Time
	}{
		{RangeToday, time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{RangeWeek, now.AddDate(0, 0, -7)},
		{RangeMonth, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		{RangeQuarter, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{RangeYear, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			r := ResolveTimeRange(Filter{Keyword: tt.keyword}, now)
			assert.Equal(t, tt.wantFrom, r.From)
			assert.Equal(t, now, r.To)
		})
	}
}

func TestResolveTimeRange_AllAndUnknownKeyword(t *testing.T) {
	now := time.Date(2025, 8, 15, 14, 30, 45, 0, time.UTC)

	for _, keyword := range []string{RangeAll, "", "fortnight"} {
		r := ResolveTimeRange(Filter{Keyword: keyword}, now)
		assert.True(t, r.From.IsZero(), "keyword %q must fall back to an open lower bound", keyword)
		assert.Equal(t, now, r.To)
	}
}

func TestResolveTimeRange_ExplicitRangeNormalizedToWholeDays(t *testing.T) {
	now := time.Date(2025, 8, 15, 14, 30, 45, 0, time.UTC)
	from := time.Date(2025, 6, 3, 11, 45, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 8, 15, 0, 0, time.UTC)

	r := ResolveTimeRange(Filter{From: &from, To: &to}, now)

	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, 23, r.To.Hour())
	assert.Equal(t, 59, r.To.Minute())
	assert.Equal(t, 59, r.To.Second())
	assert.Equal(t, 10, r.To.Day())
}

func TestTimeRangeContains(t *testing.T) {
	r := TimeRange{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}

	assert.True(t, r.Contains(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(r.From))
	assert.False(t, r.Contains(time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))

	openEnded := TimeRange{To: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)}
	assert.True(t, openEnded.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFilterMatchesRecord(t *testing.T) {
	record := Record{
		Strategy: "Breakout",
		Leg:      Leg{Instrument: InstrumentFutures},
	}

	assert.True(t, Filter{}.matchesRecord(record))
	assert.True(t, Filter{Instrument: utils.ToPointer(InstrumentFutures)}.matchesRecord(record))
	assert.False(t, Filter{Instrument: utils.ToPointer(InstrumentEquity)}.matchesRecord(record))
	assert.True(t, Filter{Strategies: []string{"Breakout", "Scalp"}}.matchesRecord(record))
	assert.False(t, Filter{Strategies: []string{"Scalp"}}.matchesRecord(record))
}
