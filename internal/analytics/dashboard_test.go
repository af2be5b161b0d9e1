package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anujm4467/trading-journel-sub000/pkg/utils"
)

func journalRecord(id uint, strategy string, instrument Instrument, side Side, entry, exit float64, qty float64, entryDate time.Time, holdDays int) Record {
	exitDate := entryDate.AddDate(0, 0, holdDays)
	return Record{
		ID:       id,
		Strategy: strategy,
		Leg: Leg{
			Instrument: instrument,
			Side:       side,
			EntryPrice: entry,
			ExitPrice:  &exit,
			Quantity:   qty,
			EntryDate:  entryDate,
			ExitDate:   &exitDate,
		},
	}
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)

	records := []Record{
		// Equity winner inside the month window.
		journalRecord(1, "Breakout", InstrumentEquity, SideBuy, 100, 110, 10, time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC), 2),
		// Equity loser inside the window.
		journalRecord(2, "Breakout", InstrumentEquity, SideBuy, 200, 190, 5, time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC), 1),
		// Old trade: outside the month window, still visible to the strategy mix.
		journalRecord(3, "Swing", InstrumentEquity, SideBuy, 50, 80, 10, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), 3),
		// Malformed record: flagged, not fatal.
		{ID: 4, Strategy: "Breakout", Leg: Leg{Instrument: InstrumentEquity, Side: SideBuy, EntryPrice: 0, Quantity: 10, EntryDate: now}},
	}

	dashboard := BuildDashboard(records, Filter{Keyword: RangeMonth}, now)

	// Overview covers only the trades inside the window.
	assert.Equal(t, 2, dashboard.Overview.TotalTrades)
	assert.Equal(t, 1, dashboard.Overview.WinningTrades)
	assert.Equal(t, 1, dashboard.Overview.LosingTrades)
	assert.Equal(t, 50.0, dashboard.Overview.TotalNetPnl) // +100 - 50
	assert.Zero(t, dashboard.Overview.OpenTrades)

	// Strategy distribution is exempt from the time filter.
	require.Len(t, dashboard.StrategyPerformance, 2)
	strategies := map[string]StrategyPerformance{}
	for _, s := range dashboard.StrategyPerformance {
		strategies[s.Strategy] = s
	}
	assert.Equal(t, 1, strategies["Swing"].Trades, "out-of-window trade still counts toward strategy mix")
	assert.Equal(t, 2, strategies["Breakout"].Trades)

	require.Len(t, dashboard.InstrumentPerformance, 1)
	assert.Equal(t, InstrumentEquity, dashboard.InstrumentPerformance[0].Instrument)
	assert.Equal(t, 2, dashboard.InstrumentPerformance[0].Trades)

	// Equity trades carry no charges.
	assert.Empty(t, dashboard.ChargesBreakdown)

	require.Len(t, dashboard.DailyPnlData, 2)
	assert.Equal(t, "2025-08-06", dashboard.DailyPnlData[0].Date)
	assert.Equal(t, 100.0, dashboard.DailyPnlData[0].Pnl)
	assert.Equal(t, "2025-08-07", dashboard.DailyPnlData[1].Date)
	assert.Equal(t, -50.0, dashboard.DailyPnlData[1].Pnl)

	require.Len(t, dashboard.WeekdayAnalysis, 7)
	assert.Equal(t, "Monday", dashboard.WeekdayAnalysis[0].Day)
	assert.Equal(t, 1, dashboard.WeekdayAnalysis[0].Trades) // entered Mon Aug 4
	assert.Equal(t, 1, dashboard.WeekdayAnalysis[2].Trades) // entered Wed Aug 6

	require.NotNil(t, dashboard.PeriodAnalysis.MostProfitable)
	assert.Equal(t, 2, dashboard.PeriodAnalysis.TotalTrades)
	assert.Equal(t, 50.0, dashboard.PeriodAnalysis.TotalPnl)

	// Daily series [100, -50]: peak 100, trough 50.
	assert.Equal(t, 50.0, dashboard.RiskData.MaxDrawdown)
	assert.Equal(t, 2.0, dashboard.RiskData.AvgRiskReward) // 100 / |-50|

	require.Len(t, dashboard.ExcludedRecords, 1)
	assert.Equal(t, uint(4), dashboard.ExcludedRecords[0].RecordID)
	assert.NotEmpty(t, dashboard.ExcludedRecords[0].Reason)
}

func TestBuildDashboard_Deterministic(t *testing.T) {
	now := time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)
	records := []Record{
		journalRecord(1, "Breakout", InstrumentOptions, SideSell, 220, 210, 225, time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC), 2),
		journalRecord(2, "Swing", InstrumentFutures, SideBuy, 22000, 22150, 50, time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC), 1),
	}
	filter := Filter{Keyword: RangeMonth}

	first := BuildDashboard(records, filter, now)
	second := BuildDashboard(records, filter, now)

	assert.Equal(t, first, second)
}

func TestBuildDashboard_InstrumentAndStrategyFilters(t *testing.T) {
	now := time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)
	records := []Record{
		journalRecord(1, "Breakout", InstrumentEquity, SideBuy, 100, 110, 10, time.Date(2025, 8, 4, 10, 0, 0, 0, time.UTC), 1),
		journalRecord(2, "Swing", InstrumentFutures, SideBuy, 22000, 22100, 50, time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC), 1),
	}

	equityOnly := BuildDashboard(records, Filter{Keyword: RangeAll, Instrument: utils.ToPointer(InstrumentEquity)}, now)
	assert.Equal(t, 1, equityOnly.Overview.TotalTrades)
	require.Len(t, equityOnly.StrategyPerformance, 1)
	assert.Equal(t, "Breakout", equityOnly.StrategyPerformance[0].Strategy)

	swingOnly := BuildDashboard(records, Filter{Keyword: RangeAll, Strategies: []string{"Swing"}}, now)
	assert.Equal(t, 1, swingOnly.Overview.TotalTrades)
	require.Len(t, swingOnly.InstrumentPerformance, 1)
	assert.Equal(t, InstrumentFutures, swingOnly.InstrumentPerformance[0].Instrument)
}

func TestBuildDashboard_OpenEquityWithLastPrice(t *testing.T) {
	now := time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC)
	records := []Record{
		{
			ID:       1,
			Strategy: "Swing",
			Leg: Leg{
				Instrument: InstrumentEquity,
				Side:       SideBuy,
				EntryPrice: 500,
				Quantity:   20,
				EntryDate:  time.Date(2025, 8, 11, 9, 30, 0, 0, time.UTC),
			},
			LastPrice: utils.ToPointer(525.0),
		},
	}

	dashboard := BuildDashboard(records, Filter{Keyword: RangeMonth}, now)

	assert.Equal(t, 1, dashboard.Overview.OpenTrades)
	assert.Equal(t, 1, dashboard.Overview.TotalTrades)
	assert.Equal(t, 500.0, dashboard.Overview.TotalNetPnl, "unrealized equity P&L via last traded price")
	assert.Empty(t, dashboard.DailyPnlData, "open trades never reach period buckets")
}
