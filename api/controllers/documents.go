package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/api/responses"
	"github.com/oohdesk/oohdesk-backend/api/validators"
	documentsvc "github.com/oohdesk/oohdesk-backend/internal/documents"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

type createDocumentRequest struct {
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	Type       string     `json:"type" validate:"required"`
	FileName   string     `json:"file_name" validate:"required"`
	FileSize   int64      `json:"file_size" validate:"required,min=1"`
	MimeType   string     `json:"mime_type" validate:"required"`
	GPSLat     *float64   `json:"gps_lat,omitempty" validate:"omitempty,min=-90,max=90"`
	GPSLng     *float64   `json:"gps_lng,omitempty" validate:"omitempty,min=-180,max=180"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

type updateDocumentRequest struct {
	Status     *string    `json:"status,omitempty"`
	GPSLat     *float64   `json:"gps_lat,omitempty" validate:"omitempty,min=-90,max=90"`
	GPSLng     *float64   `json:"gps_lng,omitempty" validate:"omitempty,min=-180,max=180"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// CreateDocument registers uploaded file metadata against a campaign or booking.
func CreateDocument(svc documentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		uploadedBy, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createDocumentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		document, err := svc.Create(r.Context(), documentsvc.CreateDocumentInput{
			CampaignID: body.CampaignID,
			BookingID:  body.BookingID,
			Type:       body.Type,
			FileName:   body.FileName,
			FileSize:   body.FileSize,
			MimeType:   body.MimeType,
			GPSLat:     body.GPSLat,
			GPSLng:     body.GPSLng,
			CapturedAt: body.CapturedAt,
			UploadedBy: uploadedBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, document)
	}
}

// ListDocuments returns document metadata matching the query filters.
func ListDocuments(svc documentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		filter := documentsvc.ListDocumentsFilter{}
		campaignID, err := validators.ParseQueryUUID(r, "campaign_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.CampaignID = campaignID
		bookingID, err := validators.ParseQueryUUID(r, "booking_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.BookingID = bookingID
		if raw := validators.ParseQueryString(r, "type"); raw != nil {
			docType, err := enums.ParseDocumentType(*raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type filter"))
				return
			}
			filter.Type = &docType
		}
		if raw := validators.ParseQueryString(r, "status"); raw != nil {
			status, err := enums.ParseDocumentStatus(*raw)
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

		documents, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, documents)
	}
}

// GetDocument returns a single document's metadata by ID.
func GetDocument(svc documentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		document, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, document)
	}
}

// UpdateDocument patches review status and capture metadata.
func UpdateDocument(svc documentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateDocumentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := documentsvc.UpdateDocumentInput{
			GPSLat:     body.GPSLat,
			GPSLng:     body.GPSLng,
			CapturedAt: body.CapturedAt,
		}
		if body.Status != nil {
			status, err := enums.ParseDocumentStatus(*body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			input.Status = &status
		}

		document, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, document)
	}
}

// DeleteDocument removes document metadata.
func DeleteDocument(svc documentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
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
