package parties

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a parties repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindVehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Where("license_plate = ?", plate).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *repository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *repository) UpdateVehicleCategory(ctx context.Context, id uuid.UUID, carCategory string) error {
	return r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", id).
		Update("car_category", carCategory).Error
}

func (r *repository) SearchVehicles(ctx context.Context, plateFragment string, limit int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	pattern := "%" + strings.ToUpper(plateFragment) + "%"
	err := r.db.WithContext(ctx).
		Where("UPPER(license_plate) LIKE ?", pattern).
		Order("license_plate ASC").
		Limit(limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *repository) ListWashers(ctx context.Context) ([]models.Washer, error) {
	var washers []models.Washer
	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&washers).Error
	if err != nil {
		return nil, err
	}
	return washers, nil
}

func (r *repository) FindWasher(ctx context.Context, id uuid.UUID) (*models.Washer, error) {
	var washer models.Washer
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&washer).Error
	if err != nil {
		return nil, err
	}
	return &washer, nil
}

func (r *repository) FindWasherByUsername(ctx context.Context, username string) (*models.Washer, error) {
	var washer models.Washer
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&washer).Error
	if err != nil {
		return nil, err
	}
	return &washer, nil
}

func (r *repository) CreateWasher(ctx context.Context, washer *models.Washer) error {
	if washer.ID == uuid.Nil {
		washer.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(washer).Error
}

func (r *repository) UpdateWasher(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Washer{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Preload("Discounts").
		Order("name ASC").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *repository) FindCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).
		Preload("Discounts").
		Where("id = ?", id).
		First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *repository) CreateCompany(ctx context.Context, company *models.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *repository) UpdateCompany(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) DeleteCompany(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Company{})
	return res.RowsAffected, res.Error
}

func (r *repository) ListDiscounts(ctx context.Context, companyID uuid.UUID) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("percentage ASC").
		Find(&discounts).Error
	if err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *repository) FindDiscount(ctx context.Context, id uuid.UUID) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&discount).Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

func (r *repository) FindActiveDiscount(ctx context.Context, companyID uuid.UUID, percentage decimal.Decimal) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND active = ? AND percentage = ?", companyID, true, percentage).
		First(&discount).Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

func (r *repository) CreateDiscount(ctx context.Context, discount *models.Discount) error {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *repository) UpdateDiscount(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Discount{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) DeleteDiscount(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Discount{})
	return res.RowsAffected, res.Error
}
