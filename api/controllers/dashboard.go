package controllers

import (
	"net/http"

	"github.com/oohdesk/oohdesk-backend/api/responses"
	dashboardsvc "github.com/oohdesk/oohdesk-backend/internal/dashboard"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
)

// DashboardStats returns the live campaign and booking aggregates.
func DashboardStats(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
