package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/washdesk/washdesk-backend/api/responses"
	"github.com/washdesk/washdesk-backend/api/validators"
	"github.com/washdesk/washdesk-backend/internal/taxonomy"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/logger"
)

type createTypePayload struct {
	Code      string `json:"code" validate:"required"`
	NameEn    string `json:"name_en" validate:"required"`
	NameKa    string `json:"name_ka" validate:"required"`
	Active    *bool  `json:"active,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

type updateTypePayload struct {
	Code      *string `json:"code,omitempty"`
	NameEn    *string `json:"name_en,omitempty"`
	NameKa    *string `json:"name_ka,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

func taxonomyKind(r *http.Request) (enums.TaxonomyKind, error) {
	switch chi.URLParam(r, "kind") {
	case "car":
		return enums.TaxonomyKindCarType, nil
	case "wash":
		return enums.TaxonomyKindWashType, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "type kind must be car or wash")
}

// TypeList returns the taxonomy of the requested kind.
func TypeList(svc taxonomy.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "taxonomy service unavailable"))
			return
		}

		kind, err := taxonomyKind(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		types, err := svc.List(ctx, kind)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"types": types})
	}
}

// TypeCreate adds a taxonomy entry, admin plus master pin.
func TypeCreate(svc taxonomy.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "taxonomy service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		kind, err := taxonomyKind(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createTypePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		active := true
		if payload.Active != nil {
			active = *payload.Active
		}

		created, err := svc.Create(ctx, taxonomy.CreateInput{
			Kind:      kind,
			Code:      validators.SanitizeString(payload.Code, 64),
			NameEn:    validators.SanitizeString(payload.NameEn, 128),
			NameKa:    validators.SanitizeString(payload.NameKa, 128),
			Active:    active,
			SortOrder: payload.SortOrder,
			ActorID:   actor,
			ActorRole: actorRole(ctx),
			MasterPin: masterPin(r),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// TypeUpdate edits a taxonomy entry, admin plus master pin.
func TypeUpdate(svc taxonomy.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "taxonomy service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		kind, err := taxonomyKind(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "typeId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateTypePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := taxonomy.UpdateInput{
			Kind:      kind,
			ID:        id,
			Active:    payload.Active,
			SortOrder: payload.SortOrder,
			ActorID:   actor,
			ActorRole: actorRole(ctx),
			MasterPin: masterPin(r),
		}
		if payload.Code != nil {
			code := validators.SanitizeString(*payload.Code, 64)
			input.Code = &code
		}
		if payload.NameEn != nil {
			name := validators.SanitizeString(*payload.NameEn, 128)
			input.NameEn = &name
		}
		if payload.NameKa != nil {
			name := validators.SanitizeString(*payload.NameKa, 128)
			input.NameKa = &name
		}

		updated, err := svc.Update(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// TypeDelete removes a taxonomy entry, admin plus master pin.
func TypeDelete(svc taxonomy.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "taxonomy service unavailable"))
			return
		}

		actor, err := actorID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		kind, err := taxonomyKind(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		id, err := validators.ParseUUIDParam(r, "typeId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, taxonomy.DeleteInput{
			Kind:      kind,
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
