package controllers

import (
	"net/http"

	"github.com/washdesk/washdesk-backend/api/responses"
	"github.com/washdesk/washdesk-backend/api/validators"
	"github.com/washdesk/washdesk-backend/internal/parties"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
	"github.com/washdesk/washdesk-backend/pkg/logger"
)

// VehicleSearch returns vehicles whose plate contains the query fragment.
func VehicleSearch(svc parties.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "parties service unavailable"))
			return
		}

		fragment := validators.SanitizeString(r.URL.Query().Get("plate"), 32)
		vehicles, err := svc.SearchVehicles(ctx, fragment)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views := make([]vehicleView, 0, len(vehicles))
		for i := range vehicles {
			views = append(views, newVehicleView(&vehicles[i]))
		}
		responses.WriteSuccess(w, map[string]any{"vehicles": views})
	}
}
