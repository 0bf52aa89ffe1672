package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/pagination"
)

// Repository defines persistence operations for wash records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, record *models.WashRecord) error
	Find(ctx context.Context, id uuid.UUID) (*models.WashRecord, error)
	List(ctx context.Context, filter ListFilter, cursor *pagination.Cursor, limit int) ([]models.WashRecord, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ListFilter narrows a record listing. Pointer fields are skipped when nil.
type ListFilter struct {
	From       *time.Time
	To         *time.Time
	Finished   *bool
	Paid       *bool
	PlateQuery string
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// priceResolver is the slice of the pricing service records needs.
type priceResolver interface {
	ResolveOriginalPrice(ctx context.Context, carCategory, washType string, override *float64) (decimal.Decimal, error)
}
