package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntry maps one (car category, wash type) cell of the pricing matrix
// to a unit price. Upserts replace the price; no history is kept.
type PriceEntry struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CarCategory string          `gorm:"column:car_category;not null;uniqueIndex:idx_price_entries_cell"`
	WashType    string          `gorm:"column:wash_type;not null;uniqueIndex:idx_price_entries_cell"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
