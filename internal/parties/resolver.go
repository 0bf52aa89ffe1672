package parties

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
)

// Resolver locates or creates the parties a wash record references. All
// methods are safe to run inside the caller's transaction via WithTx.
type Resolver interface {
	WithTx(tx *gorm.DB) Resolver

	// ResolveVehicle finds the vehicle with the exact plate or creates it.
	// When the stored category differs from carCategory the stored row is
	// updated, last write wins.
	ResolveVehicle(ctx context.Context, plate, carCategory string) (*models.Vehicle, error)

	// ResolveWasher prefers the id, falls back to the username, and
	// auto-creates an active washer with zero commission when the username
	// is unknown. Returns a validation error when neither is provided.
	ResolveWasher(ctx context.Context, id *uuid.UUID, username string) (*models.Washer, error)

	// CompanySnapshot returns the company name for the id, or nil when the
	// id is nil or unknown. It never fails the caller.
	CompanySnapshot(ctx context.Context, companyID *uuid.UUID) *string

	// ResolveDiscountID returns the id of an active discount of the company
	// whose percentage matches exactly, or nil.
	ResolveDiscountID(ctx context.Context, companyID *uuid.UUID, percentage decimal.Decimal) *uuid.UUID
}

type resolver struct {
	repo Repository
}

// NewResolver builds a Resolver on top of the parties repository.
func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) WithTx(tx *gorm.DB) Resolver {
	return &resolver{repo: r.repo.WithTx(tx)}
}

func (r *resolver) ResolveVehicle(ctx context.Context, plate, carCategory string) (*models.Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "license plate is required")
	}

	vehicle, err := r.repo.FindVehicleByPlate(ctx, plate)
	if err == nil {
		if vehicle.CarCategory != carCategory {
			if err := r.repo.UpdateVehicleCategory(ctx, vehicle.ID, carCategory); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sync vehicle category")
			}
			vehicle.CarCategory = carCategory
		}
		return vehicle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find vehicle")
	}

	created := &models.Vehicle{LicensePlate: plate, CarCategory: carCategory}
	if err := r.repo.CreateVehicle(ctx, created); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "vehicle already registered for this plate")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create vehicle")
	}
	return created, nil
}

func (r *resolver) ResolveWasher(ctx context.Context, id *uuid.UUID, username string) (*models.Washer, error) {
	if id != nil && *id != uuid.Nil {
		washer, err := r.repo.FindWasher(ctx, *id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "washer not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find washer")
		}
		return washer, nil
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "washer id or username is required")
	}

	washer, err := r.repo.FindWasherByUsername(ctx, username)
	if err == nil {
		return washer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find washer by username")
	}

	created := &models.Washer{
		Username:         username,
		Active:           true,
		SalaryPercentage: decimal.Zero,
	}
	if err := r.repo.CreateWasher(ctx, created); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "washer username already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create washer")
	}
	return created, nil
}

func (r *resolver) CompanySnapshot(ctx context.Context, companyID *uuid.UUID) *string {
	if companyID == nil || *companyID == uuid.Nil {
		return nil
	}
	company, err := r.repo.FindCompany(ctx, *companyID)
	if err != nil {
		return nil
	}
	return &company.Name
}

func (r *resolver) ResolveDiscountID(ctx context.Context, companyID *uuid.UUID, percentage decimal.Decimal) *uuid.UUID {
	if companyID == nil || *companyID == uuid.Nil || !percentage.IsPositive() {
		return nil
	}
	discount, err := r.repo.FindActiveDiscount(ctx, *companyID, percentage)
	if err != nil {
		return nil
	}
	return &discount.ID
}
