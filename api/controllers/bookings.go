package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/api/responses"
	"github.com/oohdesk/oohdesk-backend/api/validators"
	bookingsvc "github.com/oohdesk/oohdesk-backend/internal/bookings"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

type createBookingRequest struct {
	CampaignID      uuid.UUID `json:"campaign_id" validate:"required"`
	SupplierID      uuid.UUID `json:"supplier_id" validate:"required"`
	SiteDescription string    `json:"site_description" validate:"required"`
	Location        string    `json:"location" validate:"required"`
	MediaType       string    `json:"media_type" validate:"required"`
	Cost            string    `json:"cost" validate:"required"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

type updateBookingRequest struct {
	SiteDescription *string    `json:"site_description,omitempty"`
	Location        *string    `json:"location,omitempty"`
	MediaType       *string    `json:"media_type,omitempty"`
	Cost            *string    `json:"cost,omitempty"`
	Status          *string    `json:"status,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

// CreateBooking reserves a site on a supplier's inventory for a campaign.
func CreateBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var body createBookingRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cost, err := parseAmount("cost", body.Cost)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Create(r.Context(), bookingsvc.CreateBookingInput{
			CampaignID:      body.CampaignID,
			SupplierID:      body.SupplierID,
			SiteDescription: body.SiteDescription,
			Location:        body.Location,
			MediaType:       body.MediaType,
			Cost:            cost,
			StartDate:       body.StartDate,
			EndDate:         body.EndDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

// ListBookings returns bookings matching the query filters.
func ListBookings(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		filter := bookingsvc.ListBookingsFilter{}
		campaignID, err := validators.ParseQueryUUID(r, "campaign_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.CampaignID = campaignID
		supplierID, err := validators.ParseQueryUUID(r, "supplier_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.SupplierID = supplierID
		if raw := validators.ParseQueryString(r, "status"); raw != nil {
			status, err := enums.ParseBookingStatus(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filter.Status = &status
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.Limit = limit

		bookings, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bookings)
	}
}

// GetBooking returns a single booking by ID.
func GetBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

// UpdateBooking patches mutable booking fields.
func UpdateBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateBookingRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := bookingsvc.UpdateBookingInput{
			SiteDescription: body.SiteDescription,
			Location:        body.Location,
			StartDate:       body.StartDate,
			EndDate:         body.EndDate,
		}
		if body.MediaType != nil {
			mediaType, err := enums.ParseMediaType(*body.MediaType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid media type"))
				return
			}
			input.MediaType = &mediaType
		}
		if body.Status != nil {
			status, err := enums.ParseBookingStatus(*body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			input.Status = &status
		}
		cost, err := parseOptionalAmount("cost", body.Cost)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.Cost = cost

		booking, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

// DeleteBooking removes a booking.
func DeleteBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
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
