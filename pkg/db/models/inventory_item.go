package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// InventoryItem is a bookable OOH site owned by exactly one supplier.
// UpdatedAt is refreshed on every update.
type InventoryItem struct {
	ID           uuid.UUID             `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierID   uuid.UUID             `gorm:"column:supplier_id;type:uuid;not null;index"`
	ScreenName   string                `gorm:"column:screen_name;not null"`
	ScreenType   enums.ScreenType      `gorm:"column:screen_type;type:text;not null"`
	Location     string                `gorm:"type:text;not null"`
	Region       string                `gorm:"type:text;not null"`
	GPSLat       *float64              `gorm:"column:gps_lat"`
	GPSLng       *float64              `gorm:"column:gps_lng"`
	Dimensions   string                `gorm:"type:text"`
	Resolution   string                `gorm:"type:text"`
	Facing       string                `gorm:"type:text"`
	DailyRate    decimal.Decimal       `gorm:"column:daily_rate;type:numeric(12,2);not null"`
	WeeklyRate   decimal.Decimal       `gorm:"column:weekly_rate;type:numeric(12,2);not null"`
	MonthlyRate  decimal.Decimal       `gorm:"column:monthly_rate;type:numeric(12,2);not null"`
	Status       enums.InventoryStatus `gorm:"column:status;type:text;not null;default:'available'"`
	Illuminated  bool                  `gorm:"column:illuminated;not null;default:false"`
	Digital      bool                  `gorm:"column:digital;not null;default:false"`
	TrafficCount *int64                `gorm:"column:traffic_count"`
	Notes        *string               `gorm:"column:notes"`
	IsActive     bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
