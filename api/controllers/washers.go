package controllers

import (
	"net/http"

	"github.com/washdesk/washdesk-backend/api/responses"
	"github.com/washdesk/washdesk-backend/api/validators"
	"github.com/washdesk/washdesk-backend/internal/parties"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/logger"
)

type updateWasherPayload struct {
	Name             *string  `json:"name,omitempty"`
	Surname          *string  `json:"surname,omitempty"`
	Contact          *string  `json:"contact,omitempty"`
	Active           *bool    `json:"active,omitempty"`
	SalaryPercentage *float64 `json:"salary_percentage,omitempty"`
}

// WasherList returns every washer, active or not.
func WasherList(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		washers, err := svc.ListWashers(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]washerView, 0, len(washers))
		for i := range washers {
			views = append(views, newWasherView(&washers[i]))
		}
		responses.WriteSuccess(w, map[string]any{"washers": views})
	}
}

// WasherUpdate edits a washer profile. Username never changes.
func WasherUpdate(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "washerId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateWasherPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := parties.UpdateWasherInput{
			ID:               id,
			Active:           payload.Active,
			SalaryPercentage: payload.SalaryPercentage,
			ActorRole:        actorRole(ctx),
		}
		if payload.Name != nil {
			name := validators.SanitizeString(*payload.Name, 128)
			input.Name = &name
		}
		if payload.Surname != nil {
			surname := validators.SanitizeString(*payload.Surname, 128)
			input.Surname = &surname
		}
		if payload.Contact != nil {
			contact := validators.SanitizeString(*payload.Contact, 128)
			input.Contact = &contact
		}

		washer, err := svc.UpdateWasher(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newWasherView(washer))
	}
}
