package repository

import (
	"context"
	"strings"

	"github.com/anujm4467/trading-journel-sub000/internal/dto"
	"github.com/anujm4467/trading-journel-sub000/internal/model"
	"github.com/anujm4467/trading-journel-sub000/pkg/utils"

	"gorm.io/gorm"
)

type TradeRepository interface {
	Get(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error)
	GetByID(ctx context.Context, id uint) (*model.Trade, error)
	Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	CreateCharges(ctx context.Context, charges []model.TradeCharge, opts ...utils.DBOption) error
	UpdateHedge(ctx context.Context, hedge *model.HedgePosition, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint) error
	OpenEquitySymbols(ctx context.Context, userID uint) ([]string, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

func (r *tradeRepository) Get(ctx context.Context, param dto.GetTradesParam) ([]model.Trade, error) {
	var trades []model.Trade

	qFilter := []string{}
	qFilterParam := []interface{}{}

	if param.UserID > 0 {
		qFilter = append(qFilter, "user_id = ?")
		qFilterParam = append(qFilterParam, param.UserID)
	}

	if param.Symbol != "" {
		qFilter = append(qFilter, "symbol = ?")
		qFilterParam = append(qFilterParam, param.Symbol)
	}

	if param.Instrument != "" {
		qFilter = append(qFilter, "instrument = ?")
		qFilterParam = append(qFilterParam, param.Instrument)
	}

	if len(param.Strategies) > 0 {
		qFilter = append(qFilter, "strategy IN (?)")
		qFilterParam = append(qFilterParam, param.Strategies)
	}

	if param.OnlyOpen != nil {
		if *param.OnlyOpen {
			qFilter = append(qFilter, "exit_price IS NULL")
		} else {
			qFilter = append(qFilter, "exit_price IS NOT NULL")
		}
	}

	query := r.db.WithContext(ctx).
		Preload("Hedge").
		Preload("Charges").
		Order("entry_date ASC")

	if len(qFilter) > 0 {
		query = query.Where(strings.Join(qFilter, " AND "), qFilterParam...)
	}

	if err := query.Find(&trades).Error; err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *tradeRepository) GetByID(ctx context.Context, id uint) (*model.Trade, error) {
	var trade model.Trade
	if err := r.db.WithContext(ctx).Preload("Hedge").Preload("Charges").First(&trade, id).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(trade).Error
}

func (r *tradeRepository) Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Updates(trade).Error
}

func (r *tradeRepository) CreateCharges(ctx context.Context, charges []model.TradeCharge, opts ...utils.DBOption) error {
	if len(charges) == 0 {
		return nil
	}
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Create(&charges).Error
}

func (r *tradeRepository) UpdateHedge(ctx context.Context, hedge *model.HedgePosition, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db.WithContext(ctx), opts...).Updates(hedge).Error
}

func (r *tradeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Hedge", "Charges").Delete(&model.Trade{ID: id}).Error
}

// OpenEquitySymbols lists distinct symbols of open equity trades, the set the
// quote refresher needs last-traded prices for.
func (r *tradeRepository) OpenEquitySymbols(ctx context.Context, userID uint) ([]string, error) {
	var symbols []string

	query := r.db.WithContext(ctx).
		Model(&model.Trade{}).
		Distinct("symbol").
		Where("instrument = ? AND exit_price IS NULL", "EQUITY")

	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Pluck("symbol", &symbols).Error; err != nil {
		return nil, err
	}

	return symbols, nil
}
