package models

import (
	"time"

	"github.com/google/uuid"
)

// CarTypeConfig is one entry of the car category taxonomy.
type CarTypeConfig struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string    `gorm:"column:code;not null;uniqueIndex"`
	NameEn    string    `gorm:"column:name_en;not null"`
	NameKa    string    `gorm:"column:name_ka;not null"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// WashTypeConfig is one entry of the wash type taxonomy. The CUSTOM code is
// reserved for manually priced jobs.
type WashTypeConfig struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string    `gorm:"column:code;not null;uniqueIndex"`
	NameEn    string    `gorm:"column:name_en;not null"`
	NameKa    string    `gorm:"column:name_ka;not null"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
