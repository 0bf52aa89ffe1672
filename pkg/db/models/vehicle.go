package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is identified by its license plate. The stored car category is
// synced to whatever the most recent record referencing the plate says.
type Vehicle struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	LicensePlate string    `gorm:"column:license_plate;not null;uniqueIndex"`
	CarCategory  string    `gorm:"column:car_category;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
