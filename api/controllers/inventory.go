package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/api/responses"
	"github.com/oohdesk/oohdesk-backend/api/validators"
	inventorysvc "github.com/oohdesk/oohdesk-backend/internal/inventory"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

type createInventoryItemRequest struct {
	SupplierID   *uuid.UUID `json:"supplier_id,omitempty"`
	ScreenName   string     `json:"screen_name" validate:"required"`
	ScreenType   string     `json:"screen_type" validate:"required"`
	Location     string     `json:"location" validate:"required"`
	Region       string     `json:"region" validate:"required"`
	GPSLat       *float64   `json:"gps_lat,omitempty" validate:"omitempty,min=-90,max=90"`
	GPSLng       *float64   `json:"gps_lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Dimensions   string     `json:"dimensions"`
	Resolution   string     `json:"resolution"`
	Facing       string     `json:"facing"`
	DailyRate    string     `json:"daily_rate" validate:"required"`
	WeeklyRate   string     `json:"weekly_rate" validate:"required"`
	MonthlyRate  string     `json:"monthly_rate" validate:"required"`
	Illuminated  bool       `json:"illuminated"`
	Digital      bool       `json:"digital"`
	TrafficCount *int64     `json:"traffic_count,omitempty" validate:"omitempty,min=0"`
	Notes        *string    `json:"notes,omitempty"`
}

type updateInventoryItemRequest struct {
	ScreenName   *string  `json:"screen_name,omitempty"`
	ScreenType   *string  `json:"screen_type,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Region       *string  `json:"region,omitempty"`
	GPSLat       *float64 `json:"gps_lat,omitempty" validate:"omitempty,min=-90,max=90"`
	GPSLng       *float64 `json:"gps_lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Dimensions   *string  `json:"dimensions,omitempty"`
	Resolution   *string  `json:"resolution,omitempty"`
	Facing       *string  `json:"facing,omitempty"`
	DailyRate    *string  `json:"daily_rate,omitempty"`
	WeeklyRate   *string  `json:"weekly_rate,omitempty"`
	MonthlyRate  *string  `json:"monthly_rate,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Illuminated  *bool    `json:"illuminated,omitempty"`
	Digital      *bool    `json:"digital,omitempty"`
	TrafficCount *int64   `json:"traffic_count,omitempty" validate:"omitempty,min=0"`
	Notes        *string  `json:"notes,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// CreateInventoryItem registers a site. Supplier actors always create under
// their own supplier; the service ignores any supplier_id they send.
func CreateInventoryItem(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		actor, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createInventoryItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dailyRate, err := parseAmount("daily_rate", body.DailyRate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		weeklyRate, err := parseAmount("weekly_rate", body.WeeklyRate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		monthlyRate, err := parseAmount("monthly_rate", body.MonthlyRate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), actor, inventorysvc.CreateInventoryItemInput{
			SupplierID:   body.SupplierID,
			ScreenName:   body.ScreenName,
			ScreenType:   body.ScreenType,
			Location:     body.Location,
			Region:       body.Region,
			GPSLat:       body.GPSLat,
			GPSLng:       body.GPSLng,
			Dimensions:   body.Dimensions,
			Resolution:   body.Resolution,
			Facing:       body.Facing,
			DailyRate:    dailyRate,
			WeeklyRate:   weeklyRate,
			MonthlyRate:  monthlyRate,
			Illuminated:  body.Illuminated,
			Digital:      body.Digital,
			TrafficCount: body.TrafficCount,
			Notes:        body.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// ListInventory returns the sites visible to the actor.
func ListInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		actor, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := inventorysvc.ListInventoryFilter{
			Region: validators.ParseQueryString(r, "region"),
		}
		supplierID, err := validators.ParseQueryUUID(r, "supplier_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.SupplierID = supplierID
		if raw := validators.ParseQueryString(r, "screen_type"); raw != nil {
			screenType, err := enums.ParseScreenType(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid screen_type filter"))
				return
			}
			filter.ScreenType = &screenType
		}
		if raw := validators.ParseQueryString(r, "status"); raw != nil {
			status, err := enums.ParseInventoryStatus(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filter.Status = &status
		}
		digital, err := validators.ParseQueryBool(r, "digital")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Digital = digital
		active, err := validators.ParseQueryBool(r, "active")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Active = active
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Limit = limit

		items, err := svc.List(r.Context(), actor, filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// GetInventoryItem returns a single site visible to the actor.
func GetInventoryItem(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		actor, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.GetByID(r.Context(), actor, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// UpdateInventoryItem patches mutable site fields within the actor's scope.
func UpdateInventoryItem(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		actor, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateInventoryItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := inventorysvc.UpdateInventoryItemInput{
			ScreenName:   body.ScreenName,
			Location:     body.Location,
			Region:       body.Region,
			GPSLat:       body.GPSLat,
			GPSLng:       body.GPSLng,
			Dimensions:   body.Dimensions,
			Resolution:   body.Resolution,
			Facing:       body.Facing,
			Illuminated:  body.Illuminated,
			Digital:      body.Digital,
			TrafficCount: body.TrafficCount,
			Notes:        body.Notes,
			IsActive:     body.IsActive,
		}
		if body.ScreenType != nil {
			screenType, err := enums.ParseScreenType(*body.ScreenType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid screen type"))
				return
			}
			input.ScreenType = &screenType
		}
		if body.Status != nil {
			status, err := enums.ParseInventoryStatus(*body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			input.Status = &status
		}
		dailyRate, err := parseOptionalAmount("daily_rate", body.DailyRate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.DailyRate = dailyRate
		weeklyRate, err := parseOptionalAmount("weekly_rate", body.WeeklyRate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.WeeklyRate = weeklyRate
		monthlyRate, err := parseOptionalAmount("monthly_rate", body.MonthlyRate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.MonthlyRate = monthlyRate

		item, err := svc.Update(r.Context(), actor, id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// DeleteInventoryItem removes a site within the actor's scope.
func DeleteInventoryItem(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		actor, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}
