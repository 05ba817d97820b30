package controllers

import (
	"net/http"
	"time"

	"github.com/oohdesk/oohdesk-backend/api/responses"
	"github.com/oohdesk/oohdesk-backend/api/validators"
	campaignsvc "github.com/oohdesk/oohdesk-backend/internal/campaigns"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Monetary amounts arrive as decimal strings so values like "95000.50" are
// never rounded through a float.
type createCampaignRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Budget      string    `json:"budget" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Region      string    `json:"region" validate:"required"`
	TargetReach int64     `json:"target_reach" validate:"omitempty,min=0"`
}

type updateCampaignRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Budget      *string    `json:"budget,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Region      *string    `json:"region,omitempty"`
	TargetReach *int64     `json:"target_reach,omitempty" validate:"omitempty,min=0"`
}

// CreateCampaign plans a new campaign owned by the acting user.
func CreateCampaign(svc campaignsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		createdBy, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createCampaignRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		budget, err := parseAmount("budget", body.Budget)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.Create(r.Context(), campaignsvc.CreateCampaignInput{
			Name:        body.Name,
			Description: body.Description,
			Budget:      budget,
			StartDate:   body.StartDate,
			EndDate:     body.EndDate,
			Region:      body.Region,
			TargetReach: body.TargetReach,
			CreatedBy:   createdBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, campaign)
	}
}

// ListCampaigns returns campaigns matching the query filters.
func ListCampaigns(svc campaignsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		filter := campaignsvc.ListCampaignsFilter{
			Region: validators.ParseQueryString(r, "region"),
		}
		if raw := validators.ParseQueryString(r, "status"); raw != nil {
			status, err := enums.ParseCampaignStatus(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filter.Status = &status
		}
		createdBy, err := validators.ParseQueryUUID(r, "created_by")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.CreatedBy = createdBy
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Limit = limit

		campaigns, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaigns)
	}
}

// GetCampaign returns a single campaign by ID.
func GetCampaign(svc campaignsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		campaign, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaign)
	}
}

// UpdateCampaign patches mutable campaign fields.
func UpdateCampaign(svc campaignsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateCampaignRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := campaignsvc.UpdateCampaignInput{
			Name:        body.Name,
			Description: body.Description,
			StartDate:   body.StartDate,
			EndDate:     body.EndDate,
			Region:      body.Region,
			TargetReach: body.TargetReach,
		}
		if body.Status != nil {
			status, err := enums.ParseCampaignStatus(*body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			input.Status = &status
		}
		budget, err := parseOptionalAmount("budget", body.Budget)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.Budget = budget

		campaign, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, campaign)
	}
}

// DeleteCampaign removes a campaign.
func DeleteCampaign(svc campaignsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "campaign service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}
