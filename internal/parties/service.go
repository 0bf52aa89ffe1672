package parties

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/washdesk/washdesk-backend/pkg/db"
	"github.com/washdesk/washdesk-backend/pkg/db/models"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
)

const vehicleSearchLimit = 50

// Service exposes the registry operations the back office needs beyond
// record-time resolution: listing and maintaining washers, companies,
// discounts and vehicles.
type Service interface {
	ListWashers(ctx context.Context) ([]models.Washer, error)
	UpdateWasher(ctx context.Context, input UpdateWasherInput) (*models.Washer, error)

	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	CreateCompany(ctx context.Context, input CreateCompanyInput) (*models.Company, error)
	UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID, actorRole enums.Role) error

	ListDiscounts(ctx context.Context, companyID uuid.UUID) ([]models.Discount, error)
	CreateDiscount(ctx context.Context, input CreateDiscountInput) (*models.Discount, error)
	UpdateDiscount(ctx context.Context, input UpdateDiscountInput) (*models.Discount, error)
	DeleteDiscount(ctx context.Context, id uuid.UUID, actorRole enums.Role) error

	SearchVehicles(ctx context.Context, plateFragment string) ([]models.Vehicle, error)
}

type service struct {
	repo Repository
}

// UpdateWasherInput is a partial washer update. The username is immutable.
type UpdateWasherInput struct {
	ID               uuid.UUID
	Name             *string
	Surname          *string
	Contact          *string
	Active           *bool
	SalaryPercentage *float64
	ActorRole        enums.Role
}

// CreateCompanyInput describes a new customer company.
type CreateCompanyInput struct {
	Name      string
	Contact   string
	ActorRole enums.Role
}

// UpdateCompanyInput is a partial company update.
type UpdateCompanyInput struct {
	ID        uuid.UUID
	Name      *string
	Contact   *string
	ActorRole enums.Role
}

// CreateDiscountInput adds a discount tier to a company.
type CreateDiscountInput struct {
	CompanyID  uuid.UUID
	Percentage float64
	Active     bool
	ActorRole  enums.Role
}

// UpdateDiscountInput is a partial discount update.
type UpdateDiscountInput struct {
	ID         uuid.UUID
	Percentage *float64
	Active     *bool
	ActorRole  enums.Role
}

// NewService builds the registry service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("parties repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListWashers(ctx context.Context) ([]models.Washer, error) {
	washers, err := s.repo.ListWashers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list washers")
	}
	return washers, nil
}

func (s *service) UpdateWasher(ctx context.Context, input UpdateWasherInput) (*models.Washer, error) {
	if err := requireAdmin(input.ActorRole); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindWasher(ctx, input.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "washer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load washer")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Surname != nil {
		updates["surname"] = *input.Surname
	}
	if input.Contact != nil {
		updates["contact"] = *input.Contact
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.SalaryPercentage != nil {
		pct := *input.SalaryPercentage
		if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 || pct > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "salary percentage must be between 0 and 100")
		}
		updates["salary_percentage"] = decimal.NewFromFloat(pct)
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateWasher(ctx, input.ID, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update washer")
		}
	}

	washer, err := s.repo.FindWasher(ctx, input.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load washer")
	}
	return washer, nil
}

func (s *service) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list companies")
	}
	return companies, nil
}

func (s *service) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.FindCompany(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "company not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load company")
	}
	return company, nil
}

func (s *service) CreateCompany(ctx context.Context, input CreateCompanyInput) (*models.Company, error) {
	if err := requireAdmin(input.ActorRole); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company name is required")
	}
	company := &models.Company{Name: name, Contact: input.Contact}
	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create company")
	}
	return company, nil
}

func (s *service) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*models.Company, error) {
	if err := requireAdmin(input.ActorRole); err != nil {
		return nil, err
	}
	if _, err := s.GetCompany(ctx, input.ID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "company name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Contact != nil {
		updates["contact"] = *input.Contact
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateCompany(ctx, input.ID, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update company")
		}
	}
	return s.GetCompany(ctx, input.ID)
}

func (s *service) DeleteCompany(ctx context.Context, id uuid.UUID, actorRole enums.Role) error {
	if err := requireAdmin(actorRole); err != nil {
		return err
	}
	affected, err := s.repo.DeleteCompany(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete company")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "company not found")
	}
	return nil
}

func (s *service) ListDiscounts(ctx context.Context, companyID uuid.UUID) ([]models.Discount, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}
	discounts, err := s.repo.ListDiscounts(ctx, companyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discounts")
	}
	return discounts, nil
}

func (s *service) CreateDiscount(ctx context.Context, input CreateDiscountInput) (*models.Discount, error) {
	if err := requireAdmin(input.ActorRole); err != nil {
		return nil, err
	}
	pct, err := discountPercentage(input.Percentage)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetCompany(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	discount := &models.Discount{
		CompanyID:  input.CompanyID,
		Percentage: pct,
		Active:     input.Active,
	}
	if err := s.repo.CreateDiscount(ctx, discount); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "discount already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create discount")
	}
	return discount, nil
}

func (s *service) UpdateDiscount(ctx context.Context, input UpdateDiscountInput) (*models.Discount, error) {
	if err := requireAdmin(input.ActorRole); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindDiscount(ctx, input.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "discount not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load discount")
	}

	updates := map[string]any{}
	if input.Percentage != nil {
		pct, err := discountPercentage(*input.Percentage)
		if err != nil {
			return nil, err
		}
		updates["percentage"] = pct
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if len(updates) > 0 {
		if err := s.repo.UpdateDiscount(ctx, input.ID, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update discount")
		}
	}

	discount, err := s.repo.FindDiscount(ctx, input.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load discount")
	}
	return discount, nil
}

func (s *service) DeleteDiscount(ctx context.Context, id uuid.UUID, actorRole enums.Role) error {
	if err := requireAdmin(actorRole); err != nil {
		return err
	}
	affected, err := s.repo.DeleteDiscount(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete discount")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "discount not found")
	}
	return nil
}

func (s *service) SearchVehicles(ctx context.Context, plateFragment string) ([]models.Vehicle, error) {
	fragment := strings.TrimSpace(plateFragment)
	if fragment == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plate query is required")
	}
	vehicles, err := s.repo.SearchVehicles(ctx, fragment, vehicleSearchLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search vehicles")
	}
	return vehicles, nil
}

func requireAdmin(role enums.Role) error {
	if role != enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeForbidden, "admin role required")
	}
	return nil
}

func discountPercentage(pct float64) (decimal.Decimal, error) {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 || pct > 100 {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "percentage must be between 0 and 100")
	}
	return decimal.NewFromFloat(pct), nil
}
