package service

import (
	"testing"
	"time"

	"github.com/anujm4467/trading-journel-sub000/internal/analytics"
	"github.com/anujm4467/trading-journel-sub000/internal/dto"
	"github.com/anujm4467/trading-journel-sub000/internal/model"
	"github.com/anujm4467/trading-journel-sub000/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecord(t *testing.T) {
	entry := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	exit := time.Date(2025, 6, 5, 15, 0, 0, 0, time.UTC)

	trade := model.Trade{
		ID:         42,
		Symbol:     "NIFTY25JUN24000CE",
		Instrument: "OPTIONS",
		Side:       "SELL",
		Strategy:   "Iron Condor",
		EntryPrice: 220,
		ExitPrice:  utils.ToPointer(210.0),
		Quantity:   225,
		EntryDate:  entry,
		ExitDate:   &exit,
		Hedge: &model.HedgePosition{
			EntryPrice: 80,
			ExitPrice:  utils.ToPointer(95.0),
			Quantity:   225,
			EntryDate:  entry,
			ExitDate:   &exit,
		},
		Charges: []model.TradeCharge{
			{Leg: model.ChargeLegMain, Kind: "BROKERAGE", Amount: 29.03},
			{Leg: model.ChargeLegMain, Kind: "GST", Amount: 5.22},
			{Leg: model.ChargeLegHedge, Kind: "BROKERAGE", Amount: 11.81},
		},
	}

	record := toRecord(trade)

	assert.Equal(t, uint(42), record.ID)
	assert.Equal(t, "Iron Condor", record.Strategy)
	assert.Equal(t, analytics.InstrumentOptions, record.Leg.Instrument)
	assert.Equal(t, analytics.SideSell, record.Leg.Side)
	assert.True(t, record.Leg.Closed())

	require.NotNil(t, record.Hedge)
	assert.Equal(t, analytics.InstrumentOptions, record.Hedge.Instrument)
	assert.Equal(t, analytics.SideBuy, record.Hedge.Side, "hedge with no recorded side takes the opposite of the main leg")

	assert.Len(t, record.Charges, 2)
	assert.Len(t, record.HedgeCharges, 1)
	assert.Equal(t, analytics.ChargeBrokerage, record.HedgeCharges[0].Kind)
}

func TestHedgeSideExplicit(t *testing.T) {
	trade := model.Trade{
		Side:  "SELL",
		Hedge: &model.HedgePosition{Side: utils.ToPointer("SELL")},
	}
	assert.Equal(t, analytics.SideSell, hedgeSide(trade))

	trade.Hedge.Side = nil
	assert.Equal(t, analytics.SideBuy, hedgeSide(trade))
}

func TestBuildFilter(t *testing.T) {
	t.Run("keyword and strategies", func(t *testing.T) {
		filter, err := buildFilter(dto.DashboardRequest{
			TimeRange:   "month",
			Instrument:  "OPTIONS",
			Strategies:  "Iron Condor, Straddle ,",
			Granularity: "week",
		})
		require.NoError(t, err)

		assert.Equal(t, "month", filter.Keyword)
		require.NotNil(t, filter.Instrument)
		assert.Equal(t, analytics.InstrumentOptions, *filter.Instrument)
		assert.Equal(t, []string{"Iron Condor", "Straddle"}, filter.Strategies)
		assert.Equal(t, analytics.GranularityWeek, filter.Granularity)
		assert.Nil(t, filter.From)
	})

	t.Run("explicit range", func(t *testing.T) {
		filter, err := buildFilter(dto.DashboardRequest{From: "2025-06-01", To: "2025-06-30"})
		require.NoError(t, err)

		require.NotNil(t, filter.From)
		require.NotNil(t, filter.To)
		assert.Equal(t, time.June, filter.From.Month())
		assert.Equal(t, 30, filter.To.Day())
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := buildFilter(dto.DashboardRequest{From: "2025-06-30", To: "2025-06-01"})
		assert.Error(t, err)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := buildFilter(dto.DashboardRequest{From: "30-06-2025", To: "2025-06-30"})
		assert.Error(t, err)
	})
}

func TestDashboardFilterKeyDistinguishesFilters(t *testing.T) {
	a := dashboardFilterKey(dto.DashboardRequest{TimeRange: "month", Instrument: "EQUITY"})
	b := dashboardFilterKey(dto.DashboardRequest{TimeRange: "month", Instrument: "OPTIONS"})
	c := dashboardFilterKey(dto.DashboardRequest{TimeRange: "month", Instrument: "EQUITY"})

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}

func TestChargeRows(t *testing.T) {
	rows := chargeRows(7, model.ChargeLegMain, 49500, 47250, analytics.InstrumentOptions, analytics.SideSell)

	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, uint(7), row.TradeID)
		assert.Equal(t, model.ChargeLegMain, row.Leg)
		assert.Greater(t, row.Amount, 0.0)
	}

	// Equity legs never produce charge rows.
	assert.Empty(t, chargeRows(7, model.ChargeLegMain, 1000, 1100, analytics.InstrumentEquity, analytics.SideBuy))
}
