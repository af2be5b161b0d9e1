package analytics

import "math"

// MaxDrawdown walks an ordered P&L series keeping a running cumulative sum
// and its running peak; the result is the deepest peak-to-trough decline
// observed. Always >= 0, and 0 for an empty or non-decreasing series.
func MaxDrawdown(series []float64) float64 {
	var cumulative, maxDrawdown float64
	peak := math.Inf(-1)

	for _, pnl := range series {
		cumulative += pnl
		if cumulative > peak {
			peak = cumulative
		}
		if drawdown := peak - cumulative; drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown
}

// SharpeRatio is the simplified ratio mean/population-stddev with an assumed
// zero risk-free rate; not a finance-grade Sharpe ratio. Defined as 0 for an
// empty series or one with zero standard deviation.
func SharpeRatio(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	var sum float64
	for _, v := range series {
		sum += v
	}
	mean := sum / float64(len(series))

	var variance float64
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(series))

	stdDev := math.Sqrt(variance)
	if stdDev == 0 {
		return 0
	}

	return mean / stdDev
}
