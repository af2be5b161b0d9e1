package analytics

import "math"

// Overview is the portfolio-level summary over a set of trade outcomes.
type Overview struct {
	TotalTrades   int     `json:"totalTrades"`
	WinningTrades int     `json:"winningTrades"`
	LosingTrades  int     `json:"losingTrades"`
	WinRate       float64 `json:"winRate"`
	TotalGrossPnl float64 `json:"totalGrossPnl"`
	TotalCharges  float64 `json:"totalCharges"`
	TotalNetPnl   float64 `json:"totalNetPnl"`
	AverageWin    float64 `json:"averageWin"`
	AverageLoss   float64 `json:"averageLoss"`
	ProfitFactor  float64 `json:"profitFactor"`
	OpenTrades    int     `json:"openTrades"`
}

// Summarize folds per-trade outcomes into portfolio statistics.
// A trade wins iff net P&L > 0 and loses iff net P&L < 0; break-even trades
// count only toward the total. Averages and the profit factor use net
// (post-charge) figures. Accumulation runs in full precision; rounding to two
// decimals happens once, on the returned value.
func Summarize(outcomes []TradeOutcome) Overview {
	var overview Overview
	var winSum, lossSum float64

	for _, outcome := range outcomes {
		overview.TotalTrades++
		overview.TotalGrossPnl += outcome.GrossPnl
		overview.TotalCharges += outcome.TotalCharges
		overview.TotalNetPnl += outcome.NetPnl

		if outcome.Open {
			overview.OpenTrades++
		}

		switch {
		case outcome.NetPnl > 0:
			overview.WinningTrades++
			winSum += outcome.NetPnl
		case outcome.NetPnl < 0:
			overview.LosingTrades++
			lossSum += outcome.NetPnl
		}
	}

	if overview.TotalTrades > 0 {
		overview.WinRate = float64(overview.WinningTrades) / float64(overview.TotalTrades) * 100
	}
	if overview.WinningTrades > 0 {
		overview.AverageWin = winSum / float64(overview.WinningTrades)
	}
	if overview.LosingTrades > 0 {
		overview.AverageLoss = lossSum / float64(overview.LosingTrades)
	}
	// Defined-zero on no losers: callers treat 0 as insufficient data,
	// not as zero performance.
	if lossSum != 0 {
		overview.ProfitFactor = winSum / math.Abs(lossSum)
	}

	overview.WinRate = Round2(overview.WinRate)
	overview.TotalGrossPnl = Round2(overview.TotalGrossPnl)
	overview.TotalCharges = Round2(overview.TotalCharges)
	overview.TotalNetPnl = Round2(overview.TotalNetPnl)
	overview.AverageWin = Round2(overview.AverageWin)
	overview.AverageLoss = Round2(overview.AverageLoss)
	overview.ProfitFactor = Round2(overview.ProfitFactor)

	return overview
}

// Round2 rounds to two decimal places. Applied only at output boundaries.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
