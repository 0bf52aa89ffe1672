package records

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a wash record repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, record *models.WashRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Find(ctx context.Context, id uuid.UUID) (*models.WashRecord, error) {
	var record models.WashRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter, cursor *pagination.Cursor, limit int) ([]models.WashRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.WashRecord{})

	if filter.From != nil {
		query = query.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_time < ?", *filter.To)
	}
	if filter.Finished != nil {
		if *filter.Finished {
			query = query.Where("end_time IS NOT NULL")
		} else {
			query = query.Where("end_time IS NULL")
		}
	}
	if filter.Paid != nil {
		if *filter.Paid {
			query = query.Where("payment_method IS NOT NULL")
		} else {
			query = query.Where("payment_method IS NULL")
		}
	}
	if fragment := strings.TrimSpace(filter.PlateQuery); fragment != "" {
		query = query.Where("UPPER(license_plate) LIKE ?", "%"+strings.ToUpper(fragment)+"%")
	}

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var records []models.WashRecord
	err := query.
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.WashRecord{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.WashRecord{})
	return res.RowsAffected, res.Error
}
