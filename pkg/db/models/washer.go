package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Washer is an employee paid a commission per wash. Username is immutable
// after creation.
type Washer struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username         string          `gorm:"column:username;not null;uniqueIndex"`
	Name             string          `gorm:"column:name"`
	Surname          string          `gorm:"column:surname"`
	Contact          string          `gorm:"column:contact"`
	Active           bool            `gorm:"column:active;not null;default:true"`
	SalaryPercentage decimal.Decimal `gorm:"column:salary_percentage;type:numeric(5,2);not null;default:0"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
