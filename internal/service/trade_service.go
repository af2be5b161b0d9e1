package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anujm4467/trading-journel-sub000/internal/analytics"
	"github.com/anujm4467/trading-journel-sub000/internal/dto"
	"github.com/anujm4467/trading-journel-sub000/internal/model"
	"github.com/anujm4467/trading-journel-sub000/internal/repository"
	"github.com/anujm4467/trading-journel-sub000/pkg/cache"
	"github.com/anujm4467/trading-journel-sub000/pkg/common"
	"github.com/anujm4467/trading-journel-sub000/pkg/logger"
	"github.com/anujm4467/trading-journel-sub000/pkg/utils"
)

var ErrTradeAlreadyClosed = fmt.Errorf("trade is already closed")

type TradeService interface {
	Create(ctx context.Context, req dto.CreateTradeRequest) (*model.Trade, error)
	Close(ctx context.Context, id uint, req dto.CloseTradeRequest) (*model.Trade, error)
	List(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error)
	GetByID(ctx context.Context, id uint) (*model.Trade, error)
	Delete(ctx context.Context, id uint) error
}

type tradeService struct {
	logger     *logger.Logger
	tradeRepo  repository.TradeRepository
	unitOfWork repository.UnitOfWork
	cache      cache.Cache
}

func NewTradeService(
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	unitOfWork repository.UnitOfWork,
	inmemoryCache cache.Cache,
) TradeService {
	return &tradeService{
		logger:     log,
		tradeRepo:  tradeRepo,
		unitOfWork: unitOfWork,
		cache:      inmemoryCache,
	}
}

func (s *tradeService) Create(ctx context.Context, req dto.CreateTradeRequest) (*model.Trade, error) {
	trade := &model.Trade{
		UserID:     req.UserID,
		Symbol:     req.Symbol,
		Instrument: req.Instrument,
		Side:       req.Side,
		Strategy:   req.Strategy,
		EntryPrice: req.EntryPrice,
		Quantity:   req.Quantity,
		EntryDate:  req.EntryDate,
		Notes:      req.Notes,
	}

	if req.Psychology != nil {
		raw, err := json.Marshal(req.Psychology)
		if err != nil {
			return nil, fmt.Errorf("failed to encode psychology metadata: %w", err)
		}
		trade.Psychology = raw
	}

	if req.Hedge != nil {
		trade.Hedge = &model.HedgePosition{
			Side:       req.Hedge.Side,
			EntryPrice: req.Hedge.EntryPrice,
			ExitPrice:  req.Hedge.ExitPrice,
			Quantity:   req.Hedge.Quantity,
			EntryDate:  req.Hedge.EntryDate,
			ExitDate:   req.Hedge.ExitDate,
		}
	}

	err := s.unitOfWork.Run(func(opts ...utils.DBOption) error {
		return s.tradeRepo.Create(ctx, trade, opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	s.logger.InfoContext(ctx, "Trade created",
		logger.IntField("trade_id", int(trade.ID)),
		logger.StringField("symbol", trade.Symbol),
		logger.StringField("instrument", trade.Instrument))

	s.invalidateDashboards()

	return trade, nil
}

// Close is a one-way transition: it sets the exit on the main leg, generates
// the charge rows for derivative legs, and optionally closes the hedge at the
// supplied price. A closed trade cannot be closed again.
func (s *tradeService) Close(ctx context.Context, id uint, req dto.CloseTradeRequest) (*model.Trade, error) {
	trade, err := s.tradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if trade.ExitPrice != nil {
		return nil, ErrTradeAlreadyClosed
	}

	exitDate := utils.TimeNowIST()
	if req.ExitDate != nil {
		exitDate = *req.ExitDate
	}
	if exitDate.Before(trade.EntryDate) {
		return nil, fmt.Errorf("exit date %s is before entry date %s", exitDate.Format("2006-01-02"), trade.EntryDate.Format("2006-01-02"))
	}

	trade.ExitPrice = utils.ToPointer(req.ExitPrice)
	trade.ExitDate = &exitDate

	charges := chargeRows(trade.ID, model.ChargeLegMain,
		trade.EntryPrice*trade.Quantity,
		req.ExitPrice*trade.Quantity,
		analytics.Instrument(trade.Instrument),
		analytics.Side(trade.Side))

	if trade.Hedge != nil && req.HedgeExitPrice != nil && trade.Hedge.ExitPrice == nil {
		trade.Hedge.ExitPrice = req.HedgeExitPrice
		trade.Hedge.ExitDate = &exitDate

		charges = append(charges, chargeRows(trade.ID, model.ChargeLegHedge,
			trade.Hedge.EntryPrice*trade.Hedge.Quantity,
			*req.HedgeExitPrice*trade.Hedge.Quantity,
			analytics.Instrument(trade.Instrument),
			hedgeSide(*trade))...)
	}

	err = s.unitOfWork.Run(func(opts ...utils.DBOption) error {
		if err := s.tradeRepo.Update(ctx, trade, opts...); err != nil {
			return err
		}
		if trade.Hedge != nil && trade.Hedge.ExitPrice != nil {
			if err := s.tradeRepo.UpdateHedge(ctx, trade.Hedge, opts...); err != nil {
				return err
			}
		}
		return s.tradeRepo.CreateCharges(ctx, charges, opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to close trade: %w", err)
	}

	s.logger.InfoContext(ctx, "Trade closed",
		logger.IntField("trade_id", int(trade.ID)),
		logger.StringField("symbol", trade.Symbol),
		logger.Float64Field("exit_price", req.ExitPrice),
		logger.IntField("charge_rows", len(charges)))

	s.invalidateDashboards()

	return s.tradeRepo.GetByID(ctx, id)
}

func (s *tradeService) List(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error) {
	return s.tradeRepo.Get(ctx, param)
}

func (s *tradeService) GetByID(ctx context.Context, id uint) (*model.Trade, error) {
	return s.tradeRepo.GetByID(ctx, id)
}

func (s *tradeService) Delete(ctx context.Context, id uint) error {
	if err := s.tradeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	s.logger.InfoContext(ctx, "Trade deleted", logger.IntField("trade_id", int(id)))

	s.invalidateDashboards()

	return nil
}

// invalidateDashboards drops every cached dashboard snapshot. A single write
// can shift any filter combination, so the whole prefix goes.
func (s *tradeService) invalidateDashboards() {
	s.cache.DeletePrefix(common.KEY_DASHBOARD_PREFIX)
}

// chargeRows derives the persisted per-type charge rows for one closed leg.
// Equity legs yield no rows.
func chargeRows(tradeID uint, leg string, entryValue, exitValue float64, instrument analytics.Instrument, side analytics.Side) []model.TradeCharge {
	cs := analytics.ComputeCharges(entryValue, exitValue, instrument, side)

	items := analytics.ComputedLineItems(cs)
	rows := make([]model.TradeCharge, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.TradeCharge{
			TradeID: tradeID,
			Leg:     leg,
			Kind:    string(item.Kind),
			Amount:  item.Amount,
		})
	}

	return rows
}
