package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount belongs to exactly one company. The walk-in discount is not a
// row; records carry company_id = null with a literal percentage instead.
type Discount struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID  uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index"`
	Percentage decimal.Decimal `gorm:"column:percentage;type:numeric(5,2);not null"`
	Active     bool            `gorm:"column:active;not null;default:true"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
