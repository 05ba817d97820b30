package controllers

import (
	"net/http"

	"github.com/oohdesk/oohdesk-backend/api/responses"
	seedsvc "github.com/oohdesk/oohdesk-backend/internal/seed"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
)

// RunSeed loads the demo fixtures. The route is only mounted outside
// production, so the handler itself does not gate on environment.
func RunSeed(svc seedsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seed service unavailable"))
			return
		}

		result, err := svc.Run(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !result.Seeded {
			responses.WriteSuccess(w, result)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
