package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// Campaign is the top-level planning entity owning bookings, documents, and
// invoices.
type Campaign struct {
	ID          uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string               `gorm:"type:text;not null"`
	Description string               `gorm:"type:text"`
	Status      enums.CampaignStatus `gorm:"column:status;type:text;not null;default:'draft'"`
	Budget      decimal.Decimal      `gorm:"column:budget;type:numeric(12,2);not null"`
	StartDate   time.Time            `gorm:"column:start_date;not null"`
	EndDate     time.Time            `gorm:"column:end_date;not null"`
	Region      string               `gorm:"type:text;not null"`
	TargetReach int64                `gorm:"column:target_reach;not null;default:0"`
	CreatedBy   uuid.UUID            `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
