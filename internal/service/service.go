package service

import (
	"github.com/anujm4467/trading-journel-sub000/config"
	"github.com/anujm4467/trading-journel-sub000/internal/repository"
	"github.com/anujm4467/trading-journel-sub000/pkg/cache"
	"github.com/anujm4467/trading-journel-sub000/pkg/logger"
)

type Service struct {
	AnalyticsService    AnalyticsService
	TradeService        TradeService
	QuoteRefreshService QuoteRefreshService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	analyticsService := NewAnalyticsService(cfg, log, repo.TradeRepo, repo.QuoteRepo, inmemoryCache)
	tradeService := NewTradeService(log, repo.TradeRepo, repo.UnitOfWork, inmemoryCache)
	quoteRefreshService := NewQuoteRefreshService(cfg, log, repo.TradeRepo, repo.QuoteRepo, inmemoryCache)

	return &Service{
		AnalyticsService:    analyticsService,
		TradeService:        tradeService,
		QuoteRefreshService: quoteRefreshService,
	}
}
