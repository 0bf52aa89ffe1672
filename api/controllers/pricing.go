package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/washdesk/washdesk-backend/api/responses"
	"github.com/washdesk/washdesk-backend/api/validators"
	"github.com/washdesk/washdesk-backend/internal/pricing"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/legacy"
	"github.com/washdesk/washdesk-backend/pkg/logger"
)

type priceEntryView struct {
	ID          uuid.UUID       `json:"id"`
	CarCategory string          `json:"car_category"`
	WashType    string          `json:"wash_type"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type bulkPricingPayload struct {
	Entries []bulkPricingEntry `json:"entries" validate:"required,min=1,dive"`
}

type bulkPricingEntry struct {
	CarCategory string  `json:"car_category" validate:"required"`
	WashType    string  `json:"wash_type" validate:"required"`
	Price       float64 `json:"price"`
}

// PricingMatrix returns every configured price cell.
func PricingMatrix(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		entries, err := svc.Matrix(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]priceEntryView, 0, len(entries))
		for _, entry := range entries {
			views = append(views, priceEntryView{
				ID:          entry.ID,
				CarCategory: entry.CarCategory,
				WashType:    entry.WashType,
				Price:       entry.Price,
				CreatedAt:   entry.CreatedAt,
				UpdatedAt:   entry.UpdatedAt,
			})
		}
		responses.WriteSuccess(w, map[string]any{"entries": views})
	}
}

// PricingBulkUpsert applies a skip-and-continue batch of matrix updates.
func PricingBulkUpsert(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pricing service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload bulkPricingPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		entries := make([]pricing.EntryInput, 0, len(payload.Entries))
		for _, entry := range payload.Entries {
			entries = append(entries, pricing.EntryInput{
				CarCategory: legacy.CarCategoryCode(validators.SanitizeString(entry.CarCategory, 64)),
				WashType:    legacy.WashTypeCode(validators.SanitizeString(entry.WashType, 64)),
				Price:       entry.Price,
			})
		}

		report, err := svc.BulkUpsert(ctx, pricing.BulkUpsertInput{
			Entries:   entries,
			ActorID:   actor,
			ActorRole: actorRole(ctx),
			MasterPin: masterPin(r),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
