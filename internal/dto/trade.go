package dto

import "time"

type HedgeLegRequest struct {
	Side       *string    `json:"side" validate:"omitempty,oneof=BUY SELL"`
	EntryPrice float64    `json:"entry_price" validate:"required,gt=0"`
	ExitPrice  *float64   `json:"exit_price" validate:"omitempty,gt=0"`
	Quantity   float64    `json:"quantity" validate:"required,gt=0"`
	EntryDate  time.Time  `json:"entry_date" validate:"required"`
	ExitDate   *time.Time `json:"exit_date"`
}

type CreateTradeRequest struct {
	UserID     uint             `json:"user_id" validate:"required"`
	Symbol     string           `json:"symbol" validate:"required"`
	Instrument string           `json:"instrument" validate:"required,oneof=EQUITY FUTURES OPTIONS"`
	Side       string           `json:"side" validate:"required,oneof=BUY SELL"`
	Strategy   string           `json:"strategy"`
	EntryPrice float64          `json:"entry_price" validate:"required,gt=0"`
	Quantity   float64          `json:"quantity" validate:"required,gt=0"`
	EntryDate  time.Time        `json:"entry_date" validate:"required"`
	Notes      string           `json:"notes"`
	Psychology map[string]any   `json:"psychology"`
	Hedge      *HedgeLegRequest `json:"hedge"`
}

type CloseTradeRequest struct {
	ExitPrice      float64    `json:"exit_price" validate:"required,gt=0"`
	ExitDate       *time.Time `json:"exit_date"`
	HedgeExitPrice *float64   `json:"hedge_exit_price" validate:"omitempty,gt=0"`
}

type GetTradesParam struct {
	UserID     uint
	Symbol     string
	Instrument string
	Strategies []string
	OnlyOpen   *bool
}

type ChargePreviewRequest struct {
	EntryValue float64 `query:"entry_value" validate:"required,gte=0"`
	ExitValue  float64 `query:"exit_value" validate:"gte=0"`
	Instrument string  `query:"instrument" validate:"required,oneof=EQUITY FUTURES OPTIONS"`
	Side       string  `query:"side" validate:"required,oneof=BUY SELL"`
}
