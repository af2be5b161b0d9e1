package service

import (
	"context"
	"fmt"

	"github.com/anujm4467/trading-journel-sub000/config"
	"github.com/anujm4467/trading-journel-sub000/internal/repository"
	"github.com/anujm4467/trading-journel-sub000/pkg/cache"
	"github.com/anujm4467/trading-journel-sub000/pkg/common"
	"github.com/anujm4467/trading-journel-sub000/pkg/logger"
	"github.com/anujm4467/trading-journel-sub000/pkg/utils"

	"github.com/robfig/cron/v3"
)

// QuoteRefreshService keeps last-traded prices warm for every open equity
// position, so dashboard reads rarely wait on the quote provider.
type QuoteRefreshService interface {
	Start(ctx context.Context) error
	Stop()
	RefreshOnce(ctx context.Context) (int, error)
}

type quoteRefreshService struct {
	cfg       *config.Config
	logger    *logger.Logger
	tradeRepo repository.TradeRepository
	quoteRepo repository.QuoteRepository
	cache     cache.Cache
	cron      *cron.Cron
}

func NewQuoteRefreshService(
	cfg *config.Config,
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	quoteRepo repository.QuoteRepository,
	inmemoryCache cache.Cache,
) QuoteRefreshService {
	return &quoteRefreshService{
		cfg:       cfg,
		logger:    log,
		tradeRepo: tradeRepo,
		quoteRepo: quoteRepo,
		cache:     inmemoryCache,
		cron:      cron.New(),
	}
}

func (s *quoteRefreshService) Start(ctx context.Context) error {
	spec := s.cfg.Scheduler.QuoteRefreshSpec
	if spec == "" {
		s.logger.Info("Quote refresh scheduler disabled, no cron spec configured")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		utils.GoSafe(func() {
			if _, err := s.RefreshOnce(ctx); err != nil {
				s.logger.ErrorContext(ctx, "Scheduled quote refresh failed", logger.ErrorField(err))
			}
		})
	})
	if err != nil {
		return fmt.Errorf("invalid quote refresh spec %q: %w", spec, err)
	}

	s.cron.Start()
	s.logger.Info("Quote refresh scheduler started", logger.StringField("spec", spec))

	return nil
}

func (s *quoteRefreshService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

// RefreshOnce re-fetches the price of every symbol with an open equity trade
// and drops cached dashboard snapshots so the next read revalues positions.
// Returns the number of symbols refreshed. Per-symbol failures are logged and
// skipped; the provider rate limit is enforced inside the quote repository.
func (s *quoteRefreshService) RefreshOnce(ctx context.Context) (int, error) {
	symbols, err := s.tradeRepo.OpenEquitySymbols(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list open equity symbols: %w", err)
	}

	refreshed := 0
	for _, symbol := range symbols {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}

		s.cache.Delete(fmt.Sprintf(common.KEY_LAST_PRICE, symbol))

		price, err := s.quoteRepo.GetLastPrice(ctx, symbol)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to refresh quote",
				logger.StringField("symbol", symbol),
				logger.ErrorField(err))
			continue
		}

		s.logger.DebugContext(ctx, "Quote refreshed",
			logger.StringField("symbol", symbol),
			logger.Float64Field("price", price))
		refreshed++
	}

	if refreshed > 0 {
		s.cache.DeletePrefix(common.KEY_DASHBOARD_PREFIX)
	}

	s.logger.InfoContext(ctx, "Quote refresh completed",
		logger.IntField("symbols", len(symbols)),
		logger.IntField("refreshed", refreshed))

	return refreshed, nil
}
