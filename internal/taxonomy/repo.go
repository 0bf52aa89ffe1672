package taxonomy

import (
	"context"

	"github.com/google/uuid"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a taxonomy repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListCarTypes(ctx context.Context) ([]models.CarTypeConfig, error) {
	var configs []models.CarTypeConfig
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, code ASC").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *repository) CarTypeCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.CarTypeConfig{}).
		Pluck("code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *repository) CreateCarType(ctx context.Context, cfg *models.CarTypeConfig) error {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindCarType(ctx context.Context, id uuid.UUID) (*models.CarTypeConfig, error) {
	var cfg models.CarTypeConfig
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) UpdateCarType(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.CarTypeConfig{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) DeleteCarType(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CarTypeConfig{})
	return res.RowsAffected, res.Error
}

func (r *repository) ListWashTypes(ctx context.Context) ([]models.WashTypeConfig, error) {
	var configs []models.WashTypeConfig
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, code ASC").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *repository) WashTypeCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.WashTypeConfig{}).
		Pluck("code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *repository) CreateWashType(ctx context.Context, cfg *models.WashTypeConfig) error {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindWashType(ctx context.Context, id uuid.UUID) (*models.WashTypeConfig, error) {
	var cfg models.WashTypeConfig
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) UpdateWashType(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.WashTypeConfig{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) DeleteWashType(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WashTypeConfig{})
	return res.RowsAffected, res.Error
}
