package records

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/internal/parties"
	"github.com/washdesk/washdesk-backend/internal/pricing"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/pagination"
	"github.com/washdesk/washdesk-backend/pkg/security"
)

// Service owns the wash record lifecycle: creation with party resolution
// and price computation, the finish/pay transitions, and the admin-gated
// full update and delete.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.WashRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*models.WashRecord, error)
	List(ctx context.Context, input ListInput) (*Page, error)
	Finish(ctx context.Context, id uuid.UUID) (*models.WashRecord, error)
	Pay(ctx context.Context, input PayInput) (*models.WashRecord, error)
	Update(ctx context.Context, input UpdateInput) (*models.WashRecord, error)
	Delete(ctx context.Context, input DeleteInput) error
}

type service struct {
	repo     Repository
	tx       txRunner
	resolver parties.Resolver
	prices   priceResolver
	pins     security.SecretVerifier
	now      func() time.Time
}

// CreateInput carries the canonical-code fields of a new wash record.
// Legacy display names are translated before this layer.
type CreateInput struct {
	LicensePlate       string
	CarCategory        string
	WashType           string
	WasherID           *uuid.UUID
	WasherUsername     string
	CompanyID          *uuid.UUID
	DiscountPercentage float64
	BoxNumber          int
	PriceOverride      *float64
	StartTime          *time.Time
	ActorID            uuid.UUID
}

// ListInput combines filters with cursor pagination.
type ListInput struct {
	Filter ListFilter
	Limit  int
	Cursor string
}

// Page is one page of records plus the cursor for the next one.
type Page struct {
	Records    []models.WashRecord `json:"records"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

// PayInput records the payment method for a record.
type PayInput struct {
	ID        uuid.UUID
	Method    enums.PaymentMethod
	ActorRole enums.Role
}

// UpdateInput is a partial, admin-gated record update. Nil pointers leave
// the field untouched. ClearCompany drops the company reference entirely.
type UpdateInput struct {
	ID uuid.UUID

	LicensePlate       *string
	CarCategory        *string
	WashType           *string
	WasherID           *uuid.UUID
	WasherUsername     *string
	CompanyID          *uuid.UUID
	ClearCompany       bool
	DiscountPercentage *float64
	BoxNumber          *int
	PriceOverride      *float64
	StartTime          *time.Time

	IsFinished    *bool
	IsPaid        *bool
	PaymentMethod *enums.PaymentMethod

	ActorID   uuid.UUID
	ActorRole enums.Role
	MasterPin string
}

// DeleteInput hard-deletes a record, admin plus master pin.
type DeleteInput struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	ActorRole enums.Role
	MasterPin string
}

// NewService builds the record lifecycle service.
func NewService(repo Repository, tx txRunner, resolver parties.Resolver, prices priceResolver, pins security.SecretVerifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("records repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("party resolver required")
	}
	if prices == nil {
		return nil, fmt.Errorf("price resolver required")
	}
	if pins == nil {
		return nil, fmt.Errorf("secret verifier required")
	}
	return &service{
		repo:     repo,
		tx:       tx,
		resolver: resolver,
		prices:   prices,
		pins:     pins,
		now:      time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.WashRecord, error) {
	plate := strings.TrimSpace(input.LicensePlate)
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "license plate is required")
	}
	if strings.TrimSpace(input.CarCategory) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car category is required")
	}
	if strings.TrimSpace(input.WashType) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wash type is required")
	}
	if err := validPercentage(input.DiscountPercentage); err != nil {
		return nil, err
	}

	var record *models.WashRecord
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		resolver := s.resolver.WithTx(tx)

		washer, err := resolver.ResolveWasher(ctx, input.WasherID, input.WasherUsername)
		if err != nil {
			return err
		}

		original, err := s.prices.ResolveOriginalPrice(ctx, input.CarCategory, input.WashType, input.PriceOverride)
		if err != nil {
			return err
		}
		discountPct := pricing.PercentFromFloat(&input.DiscountPercentage)
		salaryPct := washer.SalaryPercentage

		vehicle, err := resolver.ResolveVehicle(ctx, plate, input.CarCategory)
		if err != nil {
			return err
		}

		companyID := input.CompanyID
		companyName := resolver.CompanySnapshot(ctx, companyID)
		if companyName == nil {
			companyID = nil
		}
		discountID := resolver.ResolveDiscountID(ctx, companyID, discountPct)

		startTime := s.now()
		if input.StartTime != nil {
			startTime = *input.StartTime
		}

		record = &models.WashRecord{
			VehicleID:  vehicle.ID,
			WasherID:   washer.ID,
			CompanyID:  companyID,
			DiscountID: discountID,

			LicensePlate:       plate,
			CompanyName:        companyName,
			WasherUsername:     washer.Username,
			CarCategory:        input.CarCategory,
			WashType:           input.WashType,
			DiscountPercentage: discountPct,
			BoxNumber:          input.BoxNumber,

			OriginalPrice:   original,
			DiscountedPrice: pricing.DiscountedPrice(original, discountPct),
			WasherCut:       pricing.WasherCut(original, salaryPct),

			StartTime:   startTime,
			CreatedByID: input.ActorID,
		}
		return s.repo.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.WashRecord, error) {
	return s.find(ctx, id)
}

func (s *service) List(ctx context.Context, input ListInput) (*Page, error) {
	cursor, err := pagination.ParseCursor(input.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(input.Limit)

	rows, err := s.repo.List(ctx, input.Filter, cursor, pagination.LimitWithBuffer(input.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list records")
	}

	page := &Page{Records: rows}
	if len(rows) > limit {
		page.Records = rows[:limit]
		last := page.Records[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}

func (s *service) Finish(ctx context.Context, id uuid.UUID) (*models.WashRecord, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Finished() {
		return record, nil
	}

	endTime := s.now()
	if err := s.repo.Update(ctx, id, map[string]any{"end_time": endTime}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "finish record")
	}
	record.EndTime = &endTime
	return record, nil
}

func (s *service) Pay(ctx context.Context, input PayInput) (*models.WashRecord, error) {
	if input.ActorRole != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required")
	}
	if !input.Method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method must be cash or card")
	}

	record, err := s.find(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, input.ID, map[string]any{"payment_method": input.Method}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pay record")
	}
	record.PaymentMethod = &input.Method
	return record, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.WashRecord, error) {
	if err := s.authorize(input.ActorRole, input.MasterPin); err != nil {
		return nil, err
	}
	if input.DiscountPercentage != nil {
		if err := validPercentage(*input.DiscountPercentage); err != nil {
			return nil, err
		}
	}
	if input.PaymentMethod != nil && !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment method must be cash or card")
	}

	var updated *models.WashRecord
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		resolver := s.resolver.WithTx(tx)

		record, err := repo.Find(ctx, input.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load record")
		}

		updates := map[string]any{}

		// Effective values for re-resolution and re-pricing.
		plate := record.LicensePlate
		if input.LicensePlate != nil {
			plate = strings.TrimSpace(*input.LicensePlate)
			if plate == "" {
				return pkgerrors.New(pkgerrors.CodeValidation, "license plate cannot be empty")
			}
		}
		carCategory := record.CarCategory
		if input.CarCategory != nil {
			carCategory = *input.CarCategory
		}
		washType := record.WashType
		if input.WashType != nil {
			washType = *input.WashType
		}
		discountPct := record.DiscountPercentage
		if input.DiscountPercentage != nil {
			discountPct = pricing.PercentFromFloat(input.DiscountPercentage)
		}
		companyID := record.CompanyID
		if input.ClearCompany {
			companyID = nil
		} else if input.CompanyID != nil {
			companyID = input.CompanyID
		}

		washerChanged := input.WasherID != nil || input.WasherUsername != nil
		var washer *models.Washer
		if washerChanged {
			username := ""
			if input.WasherUsername != nil {
				username = *input.WasherUsername
			}
			washer, err = resolver.ResolveWasher(ctx, input.WasherID, username)
			if err != nil {
				return err
			}
			updates["washer_id"] = washer.ID
			updates["washer_username"] = washer.Username
		}

		repriceNeeded := input.CarCategory != nil || input.WashType != nil ||
			input.DiscountPercentage != nil || input.PriceOverride != nil ||
			washerChanged || input.CompanyID != nil || input.ClearCompany

		if input.LicensePlate != nil || input.CarCategory != nil {
			vehicle, err := resolver.ResolveVehicle(ctx, plate, carCategory)
			if err != nil {
				return err
			}
			updates["vehicle_id"] = vehicle.ID
			updates["license_plate"] = plate
		}
		if input.CarCategory != nil {
			updates["car_category"] = carCategory
		}
		if input.WashType != nil {
			updates["wash_type"] = washType
		}
		if input.BoxNumber != nil {
			updates["box_number"] = *input.BoxNumber
		}
		if input.StartTime != nil {
			updates["start_time"] = *input.StartTime
		}

		if repriceNeeded {
			if washer == nil {
				washer, err = resolver.ResolveWasher(ctx, &record.WasherID, "")
				if err != nil {
					return err
				}
			}

			original, err := s.prices.ResolveOriginalPrice(ctx, carCategory, washType, input.PriceOverride)
			if err != nil {
				// A manually priced record has no matrix entry behind it.
				// Keep its stored price when the combination is unchanged
				// and the request supplied no new override.
				appErr := pkgerrors.As(err)
				if appErr == nil || appErr.Code() != pkgerrors.CodePricingNotFound ||
					input.PriceOverride != nil ||
					carCategory != record.CarCategory || washType != record.WashType {
					return err
				}
				original = record.OriginalPrice
			}

			companyName := resolver.CompanySnapshot(ctx, companyID)
			if companyName == nil {
				companyID = nil
			}
			discountID := resolver.ResolveDiscountID(ctx, companyID, discountPct)

			updates["company_id"] = companyID
			updates["company_name"] = companyName
			updates["discount_id"] = discountID
			updates["discount_percentage"] = discountPct
			updates["original_price"] = original
			updates["discounted_price"] = pricing.DiscountedPrice(original, discountPct)
			updates["washer_cut"] = pricing.WasherCut(original, washer.SalaryPercentage)
		}

		applyStatusToggles(record, input, updates, s.now)

		if len(updates) > 0 {
			if err := repo.Update(ctx, input.ID, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update record")
			}
		}

		updated, err = repo.Find(ctx, input.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload record")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, input DeleteInput) error {
	if err := s.authorize(input.ActorRole, input.MasterPin); err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, input.ID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete record")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	return nil
}

// applyStatusToggles maps the isFinished/isPaid booleans onto the lifecycle
// columns. Finish and pay stay independent monotonic setters; an explicit
// false forces the field back.
func applyStatusToggles(record *models.WashRecord, input UpdateInput, updates map[string]any, now func() time.Time) {
	if input.IsFinished != nil {
		if *input.IsFinished {
			if !record.Finished() {
				updates["end_time"] = now()
			}
		} else {
			updates["end_time"] = nil
		}
	}

	if input.PaymentMethod != nil {
		updates["payment_method"] = *input.PaymentMethod
	}
	if input.IsPaid != nil {
		if *input.IsPaid {
			if input.PaymentMethod == nil && !record.Paid() {
				updates["payment_method"] = enums.PaymentMethodCash
			}
		} else {
			updates["payment_method"] = nil
		}
	}
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.WashRecord, error) {
	record, err := s.repo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load record")
	}
	return record, nil
}

func (s *service) authorize(role enums.Role, masterPin string) error {
	if role != enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeForbidden, "admin role required")
	}
	if !s.pins.Verify(masterPin) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "master pin mismatch")
	}
	return nil
}

func validPercentage(pct float64) error {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 || pct > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount percentage must be between 0 and 100")
	}
	return nil
}
