package taxonomy

import (
	"context"

	"github.com/google/uuid"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the two type taxonomies.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ListCarTypes(ctx context.Context) ([]models.CarTypeConfig, error)
	CarTypeCodes(ctx context.Context) ([]string, error)
	CreateCarType(ctx context.Context, cfg *models.CarTypeConfig) error
	FindCarType(ctx context.Context, id uuid.UUID) (*models.CarTypeConfig, error)
	UpdateCarType(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteCarType(ctx context.Context, id uuid.UUID) (int64, error)

	ListWashTypes(ctx context.Context) ([]models.WashTypeConfig, error)
	WashTypeCodes(ctx context.Context) ([]string, error)
	CreateWashType(ctx context.Context, cfg *models.WashTypeConfig) error
	FindWashType(ctx context.Context, id uuid.UUID) (*models.WashTypeConfig, error)
	UpdateWashType(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteWashType(ctx context.Context, id uuid.UUID) (int64, error)
}
