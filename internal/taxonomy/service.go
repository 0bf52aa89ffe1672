package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/security"
)

// Service manages the car type and wash type taxonomies.
type Service interface {
	List(ctx context.Context, kind enums.TaxonomyKind) ([]TypeConfig, error)
	Create(ctx context.Context, input CreateInput) (*TypeConfig, error)
	Update(ctx context.Context, input UpdateInput) (*TypeConfig, error)
	Delete(ctx context.Context, input DeleteInput) error
}

type service struct {
	repo Repository
	pins security.SecretVerifier
}

// TypeConfig is the kind-independent view of one taxonomy entry.
type TypeConfig struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	NameEn    string    `json:"name_en"`
	NameKa    string    `json:"name_ka"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
}

// CreateInput describes a new taxonomy entry.
type CreateInput struct {
	Kind      enums.TaxonomyKind
	Code      string
	NameEn    string
	NameKa    string
	Active    bool
	SortOrder int
	ActorID   uuid.UUID
	ActorRole enums.Role
	MasterPin string
}

// UpdateInput is a partial update of one taxonomy entry.
type UpdateInput struct {
	Kind      enums.TaxonomyKind
	ID        uuid.UUID
	Code      *string
	NameEn    *string
	NameKa    *string
	Active    *bool
	SortOrder *int
	ActorID   uuid.UUID
	ActorRole enums.Role
	MasterPin string
}

// DeleteInput removes one taxonomy entry. Entries still referenced by price
// entries or records are not guarded; matching the legacy behavior.
type DeleteInput struct {
	Kind      enums.TaxonomyKind
	ID        uuid.UUID
	ActorID   uuid.UUID
	ActorRole enums.Role
	MasterPin string
}

// NewService builds a taxonomy service with the required dependencies.
func NewService(repo Repository, pins security.SecretVerifier) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("taxonomy repository required")
	}
	if pins == nil {
		return nil, fmt.Errorf("secret verifier required")
	}
	return &service{repo: repo, pins: pins}, nil
}

func (s *service) List(ctx context.Context, kind enums.TaxonomyKind) ([]TypeConfig, error) {
	switch kind {
	case enums.TaxonomyKindCarType:
		configs, err := s.repo.ListCarTypes(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list car types")
		}
		out := make([]TypeConfig, len(configs))
		for i, cfg := range configs {
			out[i] = TypeConfig{ID: cfg.ID, Code: cfg.Code, NameEn: cfg.NameEn, NameKa: cfg.NameKa, Active: cfg.Active, SortOrder: cfg.SortOrder}
		}
		return out, nil
	case enums.TaxonomyKindWashType:
		configs, err := s.repo.ListWashTypes(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wash types")
		}
		out := make([]TypeConfig, len(configs))
		for i, cfg := range configs {
			out[i] = TypeConfig{ID: cfg.ID, Code: cfg.Code, NameEn: cfg.NameEn, NameKa: cfg.NameKa, Active: cfg.Active, SortOrder: cfg.SortOrder}
		}
		return out, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid taxonomy kind")
	}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*TypeConfig, error) {
	if err := s.authorize(input.ActorRole, input.MasterPin); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "code is required")
	}
	if input.Kind == enums.TaxonomyKindWashType && code == enums.WashTypeCustomCode {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wash type code is reserved").
			WithDetails(map[string]any{"code": code})
	}

	switch input.Kind {
	case enums.TaxonomyKindCarType:
		cfg := models.CarTypeConfig{Code: code, NameEn: input.NameEn, NameKa: input.NameKa, Active: input.Active, SortOrder: input.SortOrder}
		if err := s.repo.CreateCarType(ctx, &cfg); err != nil {
			return nil, createError(err, code)
		}
		return &TypeConfig{ID: cfg.ID, Code: cfg.Code, NameEn: cfg.NameEn, NameKa: cfg.NameKa, Active: cfg.Active, SortOrder: cfg.SortOrder}, nil
	case enums.TaxonomyKindWashType:
		cfg := models.WashTypeConfig{Code: code, NameEn: input.NameEn, NameKa: input.NameKa, Active: input.Active, SortOrder: input.SortOrder}
		if err := s.repo.CreateWashType(ctx, &cfg); err != nil {
			return nil, createError(err, code)
		}
		return &TypeConfig{ID: cfg.ID, Code: cfg.Code, NameEn: cfg.NameEn, NameKa: cfg.NameKa, Active: cfg.Active, SortOrder: cfg.SortOrder}, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid taxonomy kind")
	}
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*TypeConfig, error) {
	if err := s.authorize(input.ActorRole, input.MasterPin); err != nil {
		return nil, err
	}
	if input.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type id required")
	}

	updates := map[string]any{}
	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		if code == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "code cannot be empty")
		}
		if input.Kind == enums.TaxonomyKindWashType && code == enums.WashTypeCustomCode {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "wash type code is reserved")
		}
		updates["code"] = code
	}
	if input.NameEn != nil {
		updates["name_en"] = *input.NameEn
	}
	if input.NameKa != nil {
		updates["name_ka"] = *input.NameKa
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}

	switch input.Kind {
	case enums.TaxonomyKindCarType:
		if _, err := s.repo.FindCarType(ctx, input.ID); err != nil {
			return nil, findError(err, "car type")
		}
		if len(updates) > 0 {
			if err := s.repo.UpdateCarType(ctx, input.ID, updates); err != nil {
				return nil, updateError(err)
			}
		}
		cfg, err := s.repo.FindCarType(ctx, input.ID)
		if err != nil {
			return nil, findError(err, "car type")
		}
		return &TypeConfig{ID: cfg.ID, Code: cfg.Code, NameEn: cfg.NameEn, NameKa: cfg.NameKa, Active: cfg.Active, SortOrder: cfg.SortOrder}, nil
	case enums.TaxonomyKindWashType:
		if _, err := s.repo.FindWashType(ctx, input.ID); err != nil {
			return nil, findError(err, "wash type")
		}
		if len(updates) > 0 {
			if err := s.repo.UpdateWashType(ctx, input.ID, updates); err != nil {
				return nil, updateError(err)
			}
		}
		cfg, err := s.repo.FindWashType(ctx, input.ID)
		if err != nil {
			return nil, findError(err, "wash type")
		}
		return &TypeConfig{ID: cfg.ID, Code: cfg.Code, NameEn: cfg.NameEn, NameKa: cfg.NameKa, Active: cfg.Active, SortOrder: cfg.SortOrder}, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid taxonomy kind")
	}
}

func (s *service) Delete(ctx context.Context, input DeleteInput) error {
	if err := s.authorize(input.ActorRole, input.MasterPin); err != nil {
		return err
	}
	if input.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "type id required")
	}

	var affected int64
	var err error
	switch input.Kind {
	case enums.TaxonomyKindCarType:
		affected, err = s.repo.DeleteCarType(ctx, input.ID)
	case enums.TaxonomyKindWashType:
		affected, err = s.repo.DeleteWashType(ctx, input.ID)
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid taxonomy kind")
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete type config")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "type config not found")
	}
	return nil
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

func createError(err error, code string) error {
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.New(pkgerrors.CodeConflict, "type code already exists").
			WithDetails(map[string]any{"code": code})
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create type config")
}

func findError(err error, label string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, label+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load type config")
}

func updateError(err error) error {
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.New(pkgerrors.CodeConflict, "type code already exists")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update type config")
}
