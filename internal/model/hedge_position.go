package model

import "time"

// HedgePosition is the optional protective leg tied 1:1 to a trade.
// When no side is recorded it is assumed opposite to the parent trade.
type HedgePosition struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TradeID    uint       `gorm:"not null;uniqueIndex" json:"trade_id"`
	Side       *string    `json:"side"`
	EntryPrice float64    `gorm:"not null" json:"entry_price"`
	ExitPrice  *float64   `json:"exit_price"`
	Quantity   float64    `gorm:"not null" json:"quantity"`
	EntryDate  time.Time  `gorm:"not null" json:"entry_date"`
	ExitDate   *time.Time `json:"exit_date"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HedgePosition) TableName() string {
	return "hedge_positions"
}
