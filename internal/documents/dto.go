package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// DocumentDTO exposes document metadata in API responses.
type DocumentDTO struct {
	ID         uuid.UUID            `json:"id"`
	CampaignID *uuid.UUID           `json:"campaign_id,omitempty"`
	BookingID  *uuid.UUID           `json:"booking_id,omitempty"`
	Type       enums.DocumentType   `json:"type"`
	FileName   string               `json:"file_name"`
	FileSize   int64                `json:"file_size"`
	MimeType   string               `json:"mime_type"`
	Status     enums.DocumentStatus `json:"status"`
	GPSLat     *float64             `json:"gps_lat,omitempty"`
	GPSLng     *float64             `json:"gps_lng,omitempty"`
	CapturedAt *time.Time           `json:"captured_at,omitempty"`
	UploadedBy uuid.UUID            `json:"uploaded_by"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// CreateDocumentInput holds the metadata registered at upload time.
type CreateDocumentInput struct {
	CampaignID *uuid.UUID
	BookingID  *uuid.UUID
	Type       string
	FileName   string
	FileSize   int64
	MimeType   string
	GPSLat     *float64
	GPSLng     *float64
	CapturedAt *time.Time
	UploadedBy uuid.UUID
}

// UpdateDocumentInput captures the mutable document fields. Only review
// status and capture metadata change after upload.
type UpdateDocumentInput struct {
	Status     *enums.DocumentStatus
	GPSLat     *float64
	GPSLng     *float64
	CapturedAt *time.Time
}

// ListDocumentsFilter narrows document listings.
type ListDocumentsFilter struct {
	CampaignID *uuid.UUID
	BookingID  *uuid.UUID
	Type       *enums.DocumentType
	Status     *enums.DocumentStatus
	Limit      int
}

// FromModel maps the persisted document into a DTO.
func FromModel(m *models.Document) *DocumentDTO {
	if m == nil {
		return nil
	}
	return &DocumentDTO{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		BookingID:  m.BookingID,
		Type:       m.Type,
		FileName:   m.FileName,
		FileSize:   m.FileSize,
		MimeType:   m.MimeType,
		Status:     m.Status,
		GPSLat:     m.GPSLat,
		GPSLng:     m.GPSLng,
		CapturedAt: m.CapturedAt,
		UploadedBy: m.UploadedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
