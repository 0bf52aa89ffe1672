package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/washdesk/washdesk-backend/pkg/enums"
)

// WashRecord is one wash job. Besides the foreign keys it stores write-time
// snapshots (plate, company name, washer username, category/type codes,
// discount percentage) so later edits to the referenced masters never
// rewrite history. Prices are computed once at creation or re-price.
type WashRecord struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VehicleID  uuid.UUID  `gorm:"column:vehicle_id;type:uuid;not null;index"`
	WasherID   uuid.UUID  `gorm:"column:washer_id;type:uuid;not null;index"`
	CompanyID  *uuid.UUID `gorm:"column:company_id;type:uuid;index"`
	DiscountID *uuid.UUID `gorm:"column:discount_id;type:uuid"`

	LicensePlate       string          `gorm:"column:license_plate;not null;index"`
	CompanyName        *string         `gorm:"column:company_name"`
	WasherUsername     string          `gorm:"column:washer_username;not null"`
	CarCategory        string          `gorm:"column:car_category;not null"`
	WashType           string          `gorm:"column:wash_type;not null"`
	DiscountPercentage decimal.Decimal `gorm:"column:discount_percentage;type:numeric(5,2);not null;default:0"`
	BoxNumber          int             `gorm:"column:box_number;not null;default:0"`

	OriginalPrice   decimal.Decimal `gorm:"column:original_price;type:numeric(10,2);not null"`
	DiscountedPrice decimal.Decimal `gorm:"column:discounted_price;type:numeric(10,2);not null"`
	WasherCut       decimal.Decimal `gorm:"column:washer_cut;type:numeric(10,2);not null"`

	StartTime     time.Time            `gorm:"column:start_time;not null"`
	EndTime       *time.Time           `gorm:"column:end_time"`
	PaymentMethod *enums.PaymentMethod `gorm:"column:payment_method;type:text"`

	CreatedByID uuid.UUID `gorm:"column:created_by_id;type:uuid;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Finished reports whether the job has been closed out.
func (r WashRecord) Finished() bool {
	return r.EndTime != nil
}

// Paid reports whether a payment method has been recorded.
func (r WashRecord) Paid() bool {
	return r.PaymentMethod != nil
}
