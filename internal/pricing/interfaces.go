package pricing

import (
	"context"

	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the pricing matrix.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetAll(ctx context.Context) ([]models.PriceEntry, error)
	Find(ctx context.Context, carCategory, washType string) (*models.PriceEntry, error)
	Upsert(ctx context.Context, entry *models.PriceEntry) error
}

// CodeLister exposes the taxonomy codes the bulk upsert validates against.
type CodeLister interface {
	CarTypeCodes(ctx context.Context) ([]string, error)
	WashTypeCodes(ctx context.Context) ([]string, error)
}
