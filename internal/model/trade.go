package model

import (
	"time"

	"gorm.io/datatypes"
)

type Trade struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null" json:"user_id"`
	Symbol      string         `gorm:"not null" json:"symbol"`
	Instrument  string         `gorm:"not null" json:"instrument"`
	Side        string         `gorm:"not null" json:"side"`
	Strategy    string         `json:"strategy"`
	EntryPrice  float64        `gorm:"not null" json:"entry_price"`
	ExitPrice   *float64       `json:"exit_price"`
	Quantity    float64        `gorm:"not null" json:"quantity"`
	EntryDate   time.Time      `gorm:"not null" json:"entry_date"`
	ExitDate    *time.Time     `json:"exit_date"`
	Notes       string         `json:"notes"`
	Psychology  datatypes.JSON `json:"psychology"`
	Hedge       *HedgePosition `gorm:"foreignKey:TradeID" json:"hedge,omitempty"`
	Charges     []TradeCharge  `gorm:"foreignKey:TradeID" json:"charges,omitempty"`
	User        User           `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}
