package model

import "time"

const (
	ChargeLegMain  = "MAIN"
	ChargeLegHedge = "HEDGE"
)

type TradeCharge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TradeID   uint      `gorm:"not null;index" json:"trade_id"`
	Leg       string    `gorm:"not null;default:MAIN" json:"leg"`
	Kind      string    `gorm:"not null" json:"kind"`
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TradeCharge) TableName() string {
	return "trade_charges"
}
