package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/security"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the pricing matrix plus price resolution for records.
type Service interface {
	Matrix(ctx context.Context) ([]models.PriceEntry, error)
	BulkUpsert(ctx context.Context, input BulkUpsertInput) (*BulkUpsertReport, error)
	ResolveOriginalPrice(ctx context.Context, carCategory, washType string, override *float64) (decimal.Decimal, error)
}

type service struct {
	repo  Repository
	tx    txRunner
	codes CodeLister
	pins  security.SecretVerifier
}

// EntryInput is one cell of a bulk pricing update.
type EntryInput struct {
	CarCategory string
	WashType    string
	Price       float64
}

// BulkUpsertInput carries the entries plus the acting admin's credentials.
type BulkUpsertInput struct {
	Entries   []EntryInput
	ActorID   uuid.UUID
	ActorRole enums.Role
	MasterPin string
}

// SkippedEntry explains why one cell of a bulk update was not applied.
type SkippedEntry struct {
	CarCategory string `json:"car_category"`
	WashType    string `json:"wash_type"`
	Reason      string `json:"reason"`
}

// BulkUpsertReport summarizes a skip-and-continue bulk update.
type BulkUpsertReport struct {
	Applied int            `json:"applied"`
	Skipped []SkippedEntry `json:"skipped,omitempty"`
}

// SkippedError aggregates the per-entry skip reasons for logging.
func (r *BulkUpsertReport) SkippedError() error {
	if r == nil {
		return nil
	}
	var err error
	for _, s := range r.Skipped {
		err = multierr.Append(err, fmt.Errorf("%s/%s: %s", s.CarCategory, s.WashType, s.Reason))
	}
	return err
}

// NewService builds a pricing service with the required dependencies.
func NewService(repo Repository, tx txRunner, codes CodeLister, pins security.SecretVerifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("pricing repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if codes == nil {
		return nil, fmt.Errorf("taxonomy code lister required")
	}
	if pins == nil {
		return nil, fmt.Errorf("secret verifier required")
	}
	return &service{
		repo:  repo,
		tx:    tx,
		codes: codes,
		pins:  pins,
	}, nil
}

func (s *service) Matrix(ctx context.Context) ([]models.PriceEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pricing matrix")
	}
	return entries, nil
}

// ResolveOriginalPrice returns the explicit override when it is a finite
// non-negative number, otherwise the matrix price for the combination.
func (s *service) ResolveOriginalPrice(ctx context.Context, carCategory, washType string, override *float64) (decimal.Decimal, error) {
	if usableOverride(override) {
		return decimal.NewFromFloat(*override).Round(2), nil
	}

	entry, err := s.repo.Find(ctx, carCategory, washType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodePricingNotFound, "no price configured for this combination").
				WithDetails(map[string]any{"car_category": carCategory, "wash_type": washType})
		}
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup price entry")
	}
	return entry.Price, nil
}

func (s *service) BulkUpsert(ctx context.Context, input BulkUpsertInput) (*BulkUpsertReport, error) {
	if input.ActorRole != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required")
	}
	if !s.pins.Verify(input.MasterPin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "master pin mismatch")
	}
	if len(input.Entries) == 0 {
		return &BulkUpsertReport{}, nil
	}

	carCodes, err := s.codes.CarTypeCodes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load car type codes")
	}
	washCodes, err := s.codes.WashTypeCodes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wash type codes")
	}

	carSet := toSet(carCodes)
	washSet := toSet(washCodes)

	report := &BulkUpsertReport{}
	applied := make([]models.PriceEntry, 0, len(input.Entries))
	for _, entry := range input.Entries {
		if reason := validateEntry(entry, carSet, washSet); reason != "" {
			report.Skipped = append(report.Skipped, SkippedEntry{
				CarCategory: entry.CarCategory,
				WashType:    entry.WashType,
				Reason:      reason,
			})
			continue
		}
		applied = append(applied, models.PriceEntry{
			CarCategory: entry.CarCategory,
			WashType:    entry.WashType,
			Price:       decimal.NewFromFloat(entry.Price).Round(2),
		})
	}

	if len(applied) > 0 {
		err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
			repo := s.repo.WithTx(tx)
			for i := range applied {
				if err := repo.Upsert(ctx, &applied[i]); err != nil {
					return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert price entry")
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	report.Applied = len(applied)
	return report, nil
}

func validateEntry(entry EntryInput, carSet, washSet map[string]struct{}) string {
	if _, ok := carSet[entry.CarCategory]; !ok {
		return "unknown car category"
	}
	if entry.WashType == enums.WashTypeCustomCode {
		return "reserved wash type"
	}
	if _, ok := washSet[entry.WashType]; !ok {
		return "unknown wash type"
	}
	if math.IsNaN(entry.Price) || math.IsInf(entry.Price, 0) {
		return "price is not finite"
	}
	if entry.Price < 0 {
		return "price is negative"
	}
	return ""
}

func toSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}
