package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/washdesk/washdesk-backend/api/responses"
	"github.com/washdesk/washdesk-backend/api/validators"
	"github.com/washdesk/washdesk-backend/internal/records"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/legacy"
	"github.com/washdesk/washdesk-backend/pkg/logger"
	"github.com/washdesk/washdesk-backend/pkg/pagination"
)

type createRecordPayload struct {
	LicensePlate       string     `json:"license_plate" validate:"required"`
	CarCategory        string     `json:"car_category" validate:"required"`
	WashType           string     `json:"wash_type" validate:"required"`
	WasherID           *string    `json:"washer_id,omitempty"`
	WasherUsername     string     `json:"washer_username,omitempty"`
	CompanyID          *string    `json:"company_id,omitempty"`
	DiscountPercentage float64    `json:"discount_percentage,omitempty"`
	BoxNumber          int        `json:"box_number,omitempty"`
	PriceOverride      *float64   `json:"price_override,omitempty"`
	StartTime          *time.Time `json:"start_time,omitempty"`
}

type updateRecordPayload struct {
	LicensePlate       *string    `json:"license_plate,omitempty"`
	CarCategory        *string    `json:"car_category,omitempty"`
	WashType           *string    `json:"wash_type,omitempty"`
	WasherID           *string    `json:"washer_id,omitempty"`
	WasherUsername     *string    `json:"washer_username,omitempty"`
	CompanyID          *string    `json:"company_id,omitempty"`
	ClearCompany       bool       `json:"clear_company,omitempty"`
	DiscountPercentage *float64   `json:"discount_percentage,omitempty"`
	BoxNumber          *int       `json:"box_number,omitempty"`
	PriceOverride      *float64   `json:"price_override,omitempty"`
	StartTime          *time.Time `json:"start_time,omitempty"`
	IsFinished         *bool      `json:"is_finished,omitempty"`
	IsPaid             *bool      `json:"is_paid,omitempty"`
	PaymentMethod      *string    `json:"payment_method,omitempty"`
}

type payRecordPayload struct {
	Method string `json:"method" validate:"required"`
}

func parseOptionalUUID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "must be a valid id").WithDetails(map[string]any{"field": field})
	}
	return &id, nil
}

// RecordCreate registers a new wash job and resolves its pricing.
func RecordCreate(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createRecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		washerID, err := parseOptionalUUID(payload.WasherID, "washer_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		companyID, err := parseOptionalUUID(payload.CompanyID, "company_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := svc.Create(ctx, records.CreateInput{
			LicensePlate:       validators.SanitizeString(payload.LicensePlate, 32),
			CarCategory:        legacy.CarCategoryCode(validators.SanitizeString(payload.CarCategory, 64)),
			WashType:           legacy.WashTypeCode(validators.SanitizeString(payload.WashType, 64)),
			WasherID:           washerID,
			WasherUsername:     validators.SanitizeString(payload.WasherUsername, 64),
			CompanyID:          companyID,
			DiscountPercentage: payload.DiscountPercentage,
			BoxNumber:          payload.BoxNumber,
			PriceOverride:      payload.PriceOverride,
			StartTime:          payload.StartTime,
			ActorID:            actor,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newRecordView(record))
	}
}

// RecordList returns a filtered, cursor-paginated page of records.
func RecordList(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		from, err := validators.ParseQueryTime(r, "from")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		to, err := validators.ParseQueryTime(r, "to")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		finished, err := validators.ParseQueryBool(r, "finished")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		paid, err := validators.ParseQueryBool(r, "paid")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := svc.List(ctx, records.ListInput{
			Filter: records.ListFilter{
				From:       from,
				To:         to,
				Finished:   finished,
				Paid:       paid,
				PlateQuery: validators.SanitizeString(r.URL.Query().Get("plate"), 32),
			},
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newRecordPageView(page))
	}
}

// RecordGet returns a single record by id.
func RecordGet(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newRecordView(record))
	}
}

// RecordFinish closes a wash job. Finishing an already finished record is
// a no-op and returns the stored end time.
func RecordFinish(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := svc.Finish(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newRecordView(record))
	}
}

// RecordPay records the settlement method for a record.
func RecordPay(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload payRecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(validators.SanitizeString(payload.Method, 16))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		record, err := svc.Pay(ctx, records.PayInput{
			ID:        id,
			Method:    method,
			ActorRole: actorRole(ctx),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newRecordView(record))
	}
}

// RecordUpdate applies a partial, pin-gated correction to a record.
func RecordUpdate(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateRecordPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := records.UpdateInput{
			ID:                 id,
			ClearCompany:       payload.ClearCompany,
			DiscountPercentage: payload.DiscountPercentage,
			BoxNumber:          payload.BoxNumber,
			PriceOverride:      payload.PriceOverride,
			StartTime:          payload.StartTime,
			IsFinished:         payload.IsFinished,
			IsPaid:             payload.IsPaid,
			ActorID:            actor,
			ActorRole:          actorRole(ctx),
			MasterPin:          masterPin(r),
		}

		if payload.LicensePlate != nil {
			plate := validators.SanitizeString(*payload.LicensePlate, 32)
			input.LicensePlate = &plate
		}
		if payload.CarCategory != nil {
			code := legacy.CarCategoryCode(validators.SanitizeString(*payload.CarCategory, 64))
			input.CarCategory = &code
		}
		if payload.WashType != nil {
			code := legacy.WashTypeCode(validators.SanitizeString(*payload.WashType, 64))
			input.WashType = &code
		}
		if payload.WasherUsername != nil {
			username := validators.SanitizeString(*payload.WasherUsername, 64)
			input.WasherUsername = &username
		}
		if payload.PaymentMethod != nil {
			method, parseErr := enums.ParsePaymentMethod(validators.SanitizeString(*payload.PaymentMethod, 16))
			if parseErr != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid payment method"))
				return
			}
			input.PaymentMethod = &method
		}

		washerID, err := parseOptionalUUID(payload.WasherID, "washer_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input.WasherID = washerID

		companyID, err := parseOptionalUUID(payload.CompanyID, "company_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		input.CompanyID = companyID

		record, err := svc.Update(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newRecordView(record))
	}
}

// RecordDelete hard-deletes a record, admin plus master pin.
func RecordDelete(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, records.DeleteInput{
			ID:        id,
			ActorID:   actor,
			ActorRole: actorRole(ctx),
			MasterPin: masterPin(r),
		}); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
