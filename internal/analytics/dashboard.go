package analytics

import (
	"math"
	"sort"
	"time"
)

type StrategyPerformance struct {
	Strategy string  `json:"strategy"`
	Trades   int     `json:"trades"`
	WinRate  float64 `json:"winRate"`
	Pnl      float64 `json:"pnl"`
	AvgPnl   float64 `json:"avgPnl"`
}

type InstrumentPerformance struct {
	Instrument Instrument `json:"instrument"`
	Trades     int        `json:"trades"`
	Pnl        float64    `json:"pnl"`
	WinRate    float64    `json:"winRate"`
}

type ChargeTypeBreakdown struct {
	Type   ChargeKind `json:"type"`
	Amount float64    `json:"amount"`
	Count  int        `json:"count"`
}

type DailyPnl struct {
	Date string  `json:"date"`
	Pnl  float64 `json:"pnl"`
}

type WeekdayStat struct {
	Day      string  `json:"day"`
	Trades   int     `json:"trades"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	TotalPnl float64 `json:"totalPnl"`
	AvgPnl   float64 `json:"avgPnl"`
	WinRate  float64 `json:"winRate"`
}

type PeriodExtreme struct {
	Period string  `json:"period"`
	Pnl    float64 `json:"pnl"`
	Trades int     `json:"trades"`
}

type PeriodAnalysis struct {
	MostProfitable *PeriodExtreme `json:"mostProfitable"`
	MostLosing     *PeriodExtreme `json:"mostLosing"`
	TotalTrades    int            `json:"totalTrades"`
	TotalPnl       float64        `json:"totalPnl"`
}

type RiskData struct {
	MaxDrawdown float64 `json:"maxDrawdown"`
	// SharpeRatio is the simplified zero-risk-free-rate variant.
	SharpeRatio   float64 `json:"sharpeRatio"`
	AvgRiskReward float64 `json:"avgRiskReward"`
}

// Dashboard is the full aggregation document consumed by the UI.
type Dashboard struct {
	Overview              Overview                `json:"overview"`
	StrategyPerformance   []StrategyPerformance   `json:"strategyPerformance"`
	InstrumentPerformance []InstrumentPerformance `json:"instrumentPerformance"`
	ChargesBreakdown      []ChargeTypeBreakdown   `json:"chargesBreakdown"`
	DailyPnlData          []DailyPnl              `json:"dailyPnlData"`
	WeekdayAnalysis       []WeekdayStat           `json:"weekdayAnalysis"`
	PeriodAnalysis        PeriodAnalysis          `json:"periodAnalysis"`
	RiskData              RiskData                `json:"riskData"`
	ExcludedRecords       []ExcludedRecord        `json:"excludedRecords,omitempty"`
}

// BuildDashboard runs the whole aggregation pipeline over materialized journal
// records. It is pure: now is explicit and repeated calls with identical input
// produce identical output. Records failing per-leg validation are excluded
// and flagged, never fatal.
//
// The strategy distribution is deliberately exempt from the time filter: the
// strategy mix is shown across all time regardless of the active range
// selector. Instrument and strategy predicates still apply to it.
func BuildDashboard(records []Record, filter Filter, now time.Time) Dashboard {
	var (
		allOutcomes []TradeOutcome
		excluded    []ExcludedRecord
	)

	for _, record := range records {
		if !filter.matchesRecord(record) {
			continue
		}
		outcome, err := ResolveOutcome(record)
		if err != nil {
			excluded = append(excluded, ExcludedRecord{RecordID: record.ID, Reason: err.Error()})
			continue
		}
		allOutcomes = append(allOutcomes, outcome)
	}

	timeRange := ResolveTimeRange(filter, now)
	var outcomes []TradeOutcome
	for _, outcome := range allOutcomes {
		if timeRange.Contains(outcome.EntryDate) {
			outcomes = append(outcomes, outcome)
		}
	}

	granularity := filter.Granularity
	if granularity == "" || granularity == GranularityWeekday {
		granularity = GranularityMonth
	}

	daily := BucketOutcomes(outcomes, GranularityDay)
	dailyPnl := make([]DailyPnl, 0, len(daily))
	dailySeries := make([]float64, 0, len(daily))
	for _, bucket := range daily {
		dailyPnl = append(dailyPnl, DailyPnl{Date: bucket.Label, Pnl: Round2(bucket.Pnl)})
		dailySeries = append(dailySeries, bucket.Pnl)
	}

	return Dashboard{
		Overview:              Summarize(outcomes),
		StrategyPerformance:   strategyPerformance(allOutcomes),
		InstrumentPerformance: instrumentPerformance(outcomes),
		ChargesBreakdown:      chargesBreakdown(outcomes),
		DailyPnlData:          dailyPnl,
		WeekdayAnalysis:       weekdayAnalysis(outcomes),
		PeriodAnalysis:        periodAnalysis(outcomes, granularity),
		RiskData:              riskData(outcomes, dailySeries),
		ExcludedRecords:       excluded,
	}
}

func strategyPerformance(outcomes []TradeOutcome) []StrategyPerformance {
	type acc struct {
		trades int
		wins   int
		pnl    float64
	}

	byStrategy := make(map[string]*acc)
	var order []string

	for _, outcome := range outcomes {
		strategy := outcome.Strategy
		if strategy == "" {
			strategy = "Unspecified"
		}
		entry, ok := byStrategy[strategy]
		if !ok {
			entry = &acc{}
			byStrategy[strategy] = entry
			order = append(order, strategy)
		}
		entry.trades++
		entry.pnl += outcome.NetPnl
		if outcome.NetPnl > 0 {
			entry.wins++
		}
	}

	result := make([]StrategyPerformance, 0, len(order))
	for _, strategy := range order {
		entry := byStrategy[strategy]
		result = append(result, StrategyPerformance{
			Strategy: strategy,
			Trades:   entry.trades,
			WinRate:  Round2(float64(entry.wins) / float64(entry.trades) * 100),
			Pnl:      Round2(entry.pnl),
			AvgPnl:   Round2(entry.pnl / float64(entry.trades)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Pnl != result[j].Pnl {
			return result[i].Pnl > result[j].Pnl
		}
		return result[i].Strategy < result[j].Strategy
	})

	return result
}

func instrumentPerformance(outcomes []TradeOutcome) []InstrumentPerformance {
	type acc struct {
		trades int
		wins   int
		pnl    float64
	}

	byInstrument := make(map[Instrument]*acc)
	for _, outcome := range outcomes {
		entry, ok := byInstrument[outcome.Instrument]
		if !ok {
			entry = &acc{}
			byInstrument[outcome.Instrument] = entry
		}
		entry.trades++
		entry.pnl += outcome.NetPnl
		if outcome.NetPnl > 0 {
			entry.wins++
		}
	}

	var result []InstrumentPerformance
	for _, instrument := range []Instrument{InstrumentEquity, InstrumentFutures, InstrumentOptions} {
		entry, ok := byInstrument[instrument]
		if !ok {
			continue
		}
		result = append(result, InstrumentPerformance{
			Instrument: instrument,
			Trades:     entry.trades,
			Pnl:        Round2(entry.pnl),
			WinRate:    Round2(float64(entry.wins) / float64(entry.trades) * 100),
		})
	}

	return result
}

func chargesBreakdown(outcomes []TradeOutcome) []ChargeTypeBreakdown {
	result := make([]ChargeTypeBreakdown, 0, len(ChargeKinds))

	for _, kind := range ChargeKinds {
		var amount float64
		var count int
		for _, outcome := range outcomes {
			if v := outcome.Charges.Amount(kind); v > 0 {
				amount += v
				count++
			}
		}
		if count == 0 {
			continue
		}
		result = append(result, ChargeTypeBreakdown{Type: kind, Amount: Round2(amount), Count: count})
	}

	return result
}

func weekdayAnalysis(outcomes []TradeOutcome) []WeekdayStat {
	buckets := BucketOutcomes(outcomes, GranularityWeekday)

	result := make([]WeekdayStat, 0, len(buckets))
	for _, bucket := range buckets {
		stat := WeekdayStat{
			Day:      bucket.Label,
			Trades:   bucket.TradeCount,
			Wins:     bucket.WinningCount,
			Losses:   bucket.LosingCount,
			TotalPnl: Round2(bucket.Pnl),
		}
		if bucket.TradeCount > 0 {
			stat.AvgPnl = Round2(bucket.Pnl / float64(bucket.TradeCount))
			stat.WinRate = Round2(float64(bucket.WinningCount) / float64(bucket.TradeCount) * 100)
		}
		result = append(result, stat)
	}

	return result
}

func periodAnalysis(outcomes []TradeOutcome, granularity Granularity) PeriodAnalysis {
	buckets := BucketOutcomes(outcomes, granularity)

	analysis := PeriodAnalysis{}
	for _, bucket := range buckets {
		analysis.TotalTrades += bucket.TradeCount
		analysis.TotalPnl += bucket.Pnl
	}
	analysis.TotalPnl = Round2(analysis.TotalPnl)

	if best := MostProfitable(buckets); best != nil {
		analysis.MostProfitable = &PeriodExtreme{Period: best.Label, Pnl: Round2(best.Pnl), Trades: best.TradeCount}
	}
	if worst := MostLosing(buckets); worst != nil {
		analysis.MostLosing = &PeriodExtreme{Period: worst.Label, Pnl: Round2(worst.Pnl), Trades: worst.TradeCount}
	}

	return analysis
}

func riskData(outcomes []TradeOutcome, dailySeries []float64) RiskData {
	var winSum, lossSum float64
	var wins, losses int
	for _, outcome := range outcomes {
		switch {
		case outcome.NetPnl > 0:
			winSum += outcome.NetPnl
			wins++
		case outcome.NetPnl < 0:
			lossSum += outcome.NetPnl
			losses++
		}
	}

	var avgRiskReward float64
	if wins > 0 && losses > 0 {
		avgWin := winSum / float64(wins)
		avgLoss := math.Abs(lossSum / float64(losses))
		if avgLoss > 0 {
			avgRiskReward = avgWin / avgLoss
		}
	}

	return RiskData{
		MaxDrawdown:   Round2(MaxDrawdown(dailySeries)),
		SharpeRatio:   Round2(SharpeRatio(dailySeries)),
		AvgRiskReward: Round2(avgRiskReward),
	}
}
