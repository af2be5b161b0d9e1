package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func outcomesWithNet(nets ...float64) []TradeOutcome {
	outcomes := make([]TradeOutcome, 0, len(nets))
	for _, net := range nets {
		outcomes = append(outcomes, TradeOutcome{GrossPnl: net, NetPnl: net})
	}
	return outcomes
}

func TestSummarize_WinLossPartition(t *testing.T) {
	// Portfolio of +100, -50 and a break-even trade.
	overview := Summarize(outcomesWithNet(100, -50, 0))

	assert.Equal(t, 3, overview.TotalTrades)
	assert.Equal(t, 1, overview.WinningTrades)
	assert.Equal(t, 1, overview.LosingTrades)
	assert.Equal(t, 33.33, overview.WinRate)
	assert.Equal(t, 100.0, overview.AverageWin)
	assert.Equal(t, -50.0, overview.AverageLoss)
	assert.Equal(t, 50.0, overview.TotalNetPnl)
}

func TestSummarize_EmptyInput(t *testing.T) {
	overview := Summarize(nil)

	assert.Zero(t, overview.TotalTrades)
	assert.Zero(t, overview.WinRate, "win rate defined as 0 on empty input")
	assert.Zero(t, overview.ProfitFactor)
	assert.Zero(t, overview.AverageWin)
	assert.Zero(t, overview.AverageLoss)
}

func TestSummarize_ProfitFactorWithoutLosers(t *testing.T) {
	// Winners summing to 500 and zero losers: defined 0, not Inf.
	overview := Summarize(outcomesWithNet(200, 300))

	assert.Zero(t, overview.ProfitFactor)
	assert.Equal(t, 2, overview.WinningTrades)
}

func TestSummarize_ProfitFactor(t *testing.T) {
	overview := Summarize(outcomesWithNet(300, 150, -100, -50))

	assert.Equal(t, 3.0, overview.ProfitFactor)
}

func TestSummarize_Idempotent(t *testing.T) {
	outcomes := outcomesWithNet(123.456, -78.901, 0, 42)

	first := Summarize(outcomes)
	second := Summarize(outcomes)

	assert.Equal(t, first, second)
}

func TestSummarize_RoundsOnceAtBoundary(t *testing.T) {
	// Three winners of 0.333...: accumulating in full precision and rounding
	// once yields 1.0, not 0.99.
	overview := Summarize(outcomesWithNet(1.0/3, 1.0/3, 1.0/3))

	assert.Equal(t, 1.0, overview.TotalNetPnl)
	assert.Equal(t, 0.33, overview.AverageWin)
}

func TestSummarize_CountsOpenTrades(t *testing.T) {
	outcomes := []TradeOutcome{
		{NetPnl: 100},
		{NetPnl: 50, Open: true},
		{Open: true},
	}

	overview := Summarize(outcomes)

	assert.Equal(t, 3, overview.TotalTrades)
	assert.Equal(t, 2, overview.OpenTrades)
}
