package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// Booking reserves supplier inventory for a campaign.
type Booking struct {
	ID              uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID      uuid.UUID           `gorm:"column:campaign_id;type:uuid;not null;index"`
	SupplierID      uuid.UUID           `gorm:"column:supplier_id;type:uuid;not null;index"`
	SiteDescription string              `gorm:"column:site_description;not null"`
	Location        string              `gorm:"type:text;not null"`
	MediaType       enums.MediaType     `gorm:"column:media_type;type:text;not null"`
	Cost            decimal.Decimal     `gorm:"column:cost;type:numeric(12,2);not null"`
	Status          enums.BookingStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	StartDate       time.Time           `gorm:"column:start_date;not null"`
	EndDate         time.Time           `gorm:"column:end_date;not null"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
