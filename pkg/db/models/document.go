package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// Document stores metadata for uploaded paperwork. File bytes live in the
// external blob store; only the descriptor is kept here. GPS fields are set
// for proof-of-flighting captures.
type Document struct {
	ID         uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID *uuid.UUID           `gorm:"column:campaign_id;type:uuid;index"`
	BookingID  *uuid.UUID           `gorm:"column:booking_id;type:uuid;index"`
	Type       enums.DocumentType   `gorm:"column:type;type:text;not null"`
	FileName   string               `gorm:"column:file_name;not null"`
	FileSize   int64                `gorm:"column:file_size;not null;default:0"`
	MimeType   string               `gorm:"column:mime_type;not null"`
	Status     enums.DocumentStatus `gorm:"column:status;type:text;not null;default:'uploaded'"`
	GPSLat     *float64             `gorm:"column:gps_lat"`
	GPSLng     *float64             `gorm:"column:gps_lng"`
	CapturedAt *time.Time           `gorm:"column:captured_at"`
	UploadedBy uuid.UUID            `gorm:"column:uploaded_by;type:uuid;not null"`
	CreatedAt  time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
