package repository

import (
	"github.com/anujm4467/trading-journel-sub000/config"
	"github.com/anujm4467/trading-journel-sub000/pkg/cache"
	"github.com/anujm4467/trading-journel-sub000/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	TradeRepo  TradeRepository
	QuoteRepo  QuoteRepository
	UnitOfWork UnitOfWork
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	return &Repository{
		TradeRepo:  NewTradeRepository(db),
		QuoteRepo:  NewQuoteRepository(cfg, inmemoryCache, log),
		UnitOfWork: NewUnitOfWork(db),
	}, nil
}
