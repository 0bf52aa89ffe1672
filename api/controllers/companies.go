package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/washdesk/washdesk-backend/api/responses"
	"github.com/washdesk/washdesk-backend/api/validators"
	"github.com/washdesk/washdesk-backend/internal/parties"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/logger"
)

// walkInDiscountID is the pseudo id older clients send for the ad-hoc
// walk-in discount. It is not a stored row and can never be edited.
const walkInDiscountID = "walk-in"

type createCompanyPayload struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact,omitempty"`
}

type updateCompanyPayload struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

type createDiscountPayload struct {
	Percentage float64 `json:"percentage" validate:"required"`
	Active     *bool   `json:"active,omitempty"`
}

type updateDiscountPayload struct {
	Percentage *float64 `json:"percentage,omitempty"`
	Active     *bool    `json:"active,omitempty"`
}

// CompanyList returns all companies with their discount tiers.
func CompanyList(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		companies, err := svc.ListCompanies(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]companyView, 0, len(companies))
		for i := range companies {
			views = append(views, newCompanyView(&companies[i]))
		}
		responses.WriteSuccess(w, map[string]any{"companies": views})
	}
}

// CompanyGet returns one company by id.
func CompanyGet(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "companyId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		company, err := svc.GetCompany(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCompanyView(company))
	}
}

// CompanyCreate registers a customer company.
func CompanyCreate(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		var payload createCompanyPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		company, err := svc.CreateCompany(ctx, parties.CreateCompanyInput{
			Name:      validators.SanitizeString(payload.Name, 128),
			Contact:   validators.SanitizeString(payload.Contact, 128),
			ActorRole: actorRole(ctx),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCompanyView(company))
	}
}

// CompanyUpdate edits company master data.
func CompanyUpdate(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "companyId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateCompanyPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := parties.UpdateCompanyInput{ID: id, ActorRole: actorRole(ctx)}
		if payload.Name != nil {
			name := validators.SanitizeString(*payload.Name, 128)
			input.Name = &name
		}
		if payload.Contact != nil {
			contact := validators.SanitizeString(*payload.Contact, 128)
			input.Contact = &contact
		}

		company, err := svc.UpdateCompany(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCompanyView(company))
	}
}

// CompanyDelete removes a company and, through the schema cascade, its
// discounts. Existing records keep their snapshotted company name.
func CompanyDelete(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "companyId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteCompany(ctx, id, actorRole(ctx)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// DiscountList returns the discount tiers of one company.
func DiscountList(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		companyID, err := validators.ParseUUIDParam(r, "companyId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		discounts, err := svc.ListDiscounts(ctx, companyID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]discountView, 0, len(discounts))
		for i := range discounts {
			views = append(views, newDiscountView(&discounts[i]))
		}
		responses.WriteSuccess(w, map[string]any{"discounts": views})
	}
}

// DiscountCreate adds a discount tier to a company.
func DiscountCreate(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		companyID, err := validators.ParseUUIDParam(r, "companyId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createDiscountPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		active := true
		if payload.Active != nil {
			active = *payload.Active
		}

		discount, err := svc.CreateDiscount(ctx, parties.CreateDiscountInput{
			CompanyID:  companyID,
			Percentage: payload.Percentage,
			Active:     active,
			ActorRole:  actorRole(ctx),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newDiscountView(discount))
	}
}

func discountIDParam(r *http.Request) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "discountId"))
	if raw == walkInDiscountID {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "the walk-in discount cannot be modified")
	}
	return raw, nil
}

// DiscountUpdate edits a stored discount tier. The walk-in pseudo
// discount is rejected before id parsing.
func DiscountUpdate(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		if _, err := discountIDParam(r); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "discountId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateDiscountPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		discount, err := svc.UpdateDiscount(ctx, parties.UpdateDiscountInput{
			ID:         id,
			Percentage: payload.Percentage,
			Active:     payload.Active,
			ActorRole:  actorRole(ctx),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newDiscountView(discount))
	}
}

// DiscountDelete removes a stored discount tier.
func DiscountDelete(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		if _, err := discountIDParam(r); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "discountId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteDiscount(ctx, id, actorRole(ctx)); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
