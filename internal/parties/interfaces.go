package parties

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository defines persistence operations for vehicles, washers,
// companies and discounts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicleCategory(ctx context.Context, id uuid.UUID, carCategory string) error
	SearchVehicles(ctx context.Context, plateFragment string, limit int) ([]models.Vehicle, error)

	ListWashers(ctx context.Context) ([]models.Washer, error)
	FindWasher(ctx context.Context, id uuid.UUID) (*models.Washer, error)
	FindWasherByUsername(ctx context.Context, username string) (*models.Washer, error)
	CreateWasher(ctx context.Context, washer *models.Washer) error
	UpdateWasher(ctx context.Context, id uuid.UUID, updates map[string]any) error

	ListCompanies(ctx context.Context) ([]models.Company, error)
	FindCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	CreateCompany(ctx context.Context, company *models.Company) error
	UpdateCompany(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteCompany(ctx context.Context, id uuid.UUID) (int64, error)

	ListDiscounts(ctx context.Context, companyID uuid.UUID) ([]models.Discount, error)
	FindDiscount(ctx context.Context, id uuid.UUID) (*models.Discount, error)
	FindActiveDiscount(ctx context.Context, companyID uuid.UUID, percentage decimal.Decimal) (*models.Discount, error)
	CreateDiscount(ctx context.Context, discount *models.Discount) error
	UpdateDiscount(ctx context.Context, id uuid.UUID, updates map[string]any) error
	DeleteDiscount(ctx context.Context, id uuid.UUID) (int64, error)
}
