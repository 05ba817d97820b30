package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// Invoice bills a campaign, optionally attributed to a supplier.
type Invoice struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CampaignID    uuid.UUID           `gorm:"column:campaign_id;type:uuid;not null;index"`
	SupplierID    *uuid.UUID          `gorm:"column:supplier_id;type:uuid;index"`
	InvoiceNumber string              `gorm:"column:invoice_number;not null;uniqueIndex"`
	Amount        decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null"`
	Status        enums.InvoiceStatus `gorm:"column:status;type:text;not null;default:'draft'"`
	IssuedAt      time.Time           `gorm:"column:issued_at;not null"`
	DueAt         time.Time           `gorm:"column:due_at;not null"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
