package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anujm4467/trading-journel-sub000/config"
	"github.com/anujm4467/trading-journel-sub000/internal/analytics"
	"github.com/anujm4467/trading-journel-sub000/internal/dto"
	"github.com/anujm4467/trading-journel-sub000/internal/model"
	"github.com/anujm4467/trading-journel-sub000/internal/repository"
	"github.com/anujm4467/trading-journel-sub000/pkg/cache"
	"github.com/anujm4467/trading-journel-sub000/pkg/common"
	"github.com/anujm4467/trading-journel-sub000/pkg/logger"
	"github.com/anujm4467/trading-journel-sub000/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type AnalyticsService interface {
	GetDashboard(ctx context.Context, req dto.DashboardRequest) (*analytics.Dashboard, error)
	PreviewCharges(ctx context.Context, req dto.ChargePreviewRequest) analytics.ChargeSet
}

type analyticsService struct {
	cfg       *config.Config
	logger    *logger.Logger
	tradeRepo repository.TradeRepository
	quoteRepo repository.QuoteRepository
	cache     cache.Cache
}

func NewAnalyticsService(
	cfg *config.Config,
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	quoteRepo repository.QuoteRepository,
	inmemoryCache cache.Cache,
) AnalyticsService {
	return &analyticsService{
		cfg:       cfg,
		logger:    log,
		tradeRepo: tradeRepo,
		quoteRepo: quoteRepo,
		cache:     inmemoryCache,
	}
}

// GetDashboard materializes the user's journal into engine records, values
// open equity positions with last-traded prices, and runs the aggregation
// pipeline. Snapshots are cached per filter combination; any trade write
// invalidates them by prefix.
func (s *analyticsService) GetDashboard(ctx context.Context, req dto.DashboardRequest) (*analytics.Dashboard, error) {
	cacheKey := fmt.Sprintf(common.KEY_DASHBOARD_SNAPSHOT, req.UserID, dashboardFilterKey(req))
	if cached, found := s.cache.Get(cacheKey); found {
		if snapshot, ok := cached.(*analytics.Dashboard); ok {
			return snapshot, nil
		}
	}

	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	// Instrument and strategy narrowing happens in the query; the time window
	// is applied inside the engine so the strategy distribution can stay
	// range-independent.
	param := dto.GetTradesParam{
		UserID:     req.UserID,
		Instrument: req.Instrument,
		Strategies: filter.Strategies,
	}
	trades, err := s.tradeRepo.Get(ctx, param)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trades: %w", err)
	}

	lastPrices := s.fetchLastPrices(ctx, trades)

	records := make([]analytics.Record, 0, len(trades))
	for _, trade := range trades {
		record := toRecord(trade)
		if price, ok := lastPrices[trade.Symbol]; ok && record.Leg.Instrument == analytics.InstrumentEquity && !record.Leg.Closed() {
			record.LastPrice = utils.ToPointer(price)
		}
		records = append(records, record)
	}

	dashboard := analytics.BuildDashboard(records, filter, utils.TimeNowIST())

	if len(dashboard.ExcludedRecords) > 0 {
		s.logger.WarnContext(ctx, "Some journal records were excluded from aggregation",
			logger.IntField("excluded_count", len(dashboard.ExcludedRecords)),
			logger.Field("excluded", dashboard.ExcludedRecords))
	}

	s.cache.Set(cacheKey, &dashboard, s.cfg.Cache.DefaultExpiration)

	return &dashboard, nil
}

// PreviewCharges computes the charge breakdown for hypothetical leg values
// without touching the journal.
func (s *analyticsService) PreviewCharges(_ context.Context, req dto.ChargePreviewRequest) analytics.ChargeSet {
	cs := analytics.ComputeCharges(req.EntryValue, req.ExitValue, analytics.Instrument(req.Instrument), analytics.Side(req.Side))

	cs.Brokerage = analytics.Round2(cs.Brokerage)
	cs.TransactionTax = analytics.Round2(cs.TransactionTax)
	cs.ExchangeFee = analytics.Round2(cs.ExchangeFee)
	cs.RegulatoryFee = analytics.Round2(cs.RegulatoryFee)
	cs.StampDuty = analytics.Round2(cs.StampDuty)
	cs.GST = analytics.Round2(cs.GST)
	cs.Total = analytics.Round2(cs.Total)

	return cs
}

// fetchLastPrices resolves quotes for the distinct symbols of open equity
// trades. Quote failures degrade to an unvalued open position, never an error.
func (s *analyticsService) fetchLastPrices(ctx context.Context, trades []model.Trade) map[string]float64 {
	seen := make(map[string]struct{})
	var symbols []string
	for _, trade := range trades {
		if trade.Instrument != string(analytics.InstrumentEquity) || trade.ExitPrice != nil {
			continue
		}
		if _, ok := seen[trade.Symbol]; ok {
			continue
		}
		seen[trade.Symbol] = struct{}{}
		symbols = append(symbols, trade.Symbol)
	}

	if len(symbols) == 0 {
		return nil
	}

	var mu sync.Mutex
	prices := make(map[string]float64, len(symbols))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			price, err := s.quoteRepo.GetLastPrice(gCtx, symbol)
			if err != nil {
				s.logger.WarnContext(gCtx, "Failed to fetch last price, open position stays unvalued",
					logger.StringField("symbol", symbol),
					logger.ErrorField(err))
				return nil
			}
			mu.Lock()
			prices[symbol] = price
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	return prices
}

func buildFilter(req dto.DashboardRequest) (analytics.Filter, error) {
	filter := analytics.Filter{
		Keyword:     req.TimeRange,
		Granularity: analytics.Granularity(req.Granularity),
		Strategies:  splitStrategies(req.Strategies),
	}

	if req.Instrument != "" {
		filter.Instrument = utils.ToPointer(analytics.Instrument(req.Instrument))
	}

	loc := utils.GetISTTimeLocation()
	if req.From != "" && req.To != "" {
		from, err := time.ParseInLocation("2006-01-02", req.From, loc)
		if err != nil {
			return analytics.Filter{}, fmt.Errorf("invalid from date: %w", err)
		}
		to, err := time.ParseInLocation("2006-01-02", req.To, loc)
		if err != nil {
			return analytics.Filter{}, fmt.Errorf("invalid to date: %w", err)
		}
		if to.Before(from) {
			return analytics.Filter{}, fmt.Errorf("to date %s is before from date %s", req.To, req.From)
		}
		filter.From = &from
		filter.To = &to
	}

	return filter, nil
}

func splitStrategies(raw string) []string {
	if raw == "" {
		return nil
	}
	var strategies []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			strategies = append(strategies, trimmed)
		}
	}
	return strategies
}

func dashboardFilterKey(req dto.DashboardRequest) string {
	return strings.Join([]string{
		req.TimeRange,
		req.From,
		req.To,
		req.Instrument,
		req.Strategies,
		req.Granularity,
	}, "|")
}

// toRecord maps a persisted trade row, its optional hedge and its recorded
// charge rows into the engine's input shape.
func toRecord(trade model.Trade) analytics.Record {
	record := analytics.Record{
		ID:       trade.ID,
		Strategy: trade.Strategy,
		Leg: analytics.Leg{
			Instrument: analytics.Instrument(trade.Instrument),
			Side:       analytics.Side(trade.Side),
			EntryPrice: trade.EntryPrice,
			ExitPrice:  trade.ExitPrice,
			Quantity:   trade.Quantity,
			EntryDate:  trade.EntryDate,
			ExitDate:   trade.ExitDate,
		},
	}

	for _, charge := range trade.Charges {
		item := analytics.ChargeLineItem{Kind: analytics.ChargeKind(charge.Kind), Amount: charge.Amount}
		if charge.Leg == model.ChargeLegHedge {
			record.HedgeCharges = append(record.HedgeCharges, item)
		} else {
			record.Charges = append(record.Charges, item)
		}
	}

	if trade.Hedge != nil {
		record.Hedge = &analytics.Leg{
			Instrument: analytics.Instrument(trade.Instrument),
			Side:       hedgeSide(trade),
			EntryPrice: trade.Hedge.EntryPrice,
			ExitPrice:  trade.Hedge.ExitPrice,
			Quantity:   trade.Hedge.Quantity,
			EntryDate:  trade.Hedge.EntryDate,
			ExitDate:   trade.Hedge.ExitDate,
		}
	}

	return record
}

// hedgeSide falls back to the opposite of the main leg when the hedge row has
// no explicit side, the usual shape for a protective position.
func hedgeSide(trade model.Trade) analytics.Side {
	if trade.Hedge.Side != nil {
		return analytics.Side(*trade.Hedge.Side)
	}
	if analytics.Side(trade.Side) == analytics.SideBuy {
		return analytics.SideSell
	}
	return analytics.SideBuy
}
