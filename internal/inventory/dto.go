package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// Actor identifies who is performing an inventory operation. Supplier-scoped
// roles only ever see and touch rows belonging to their own supplier.
type Actor struct {
	UserID     uuid.UUID
	Role       enums.Role
	SupplierID *uuid.UUID
}

// InventoryItemDTO exposes inventory data in API responses.
type InventoryItemDTO struct {
	ID           uuid.UUID             `json:"id"`
	SupplierID   uuid.UUID             `json:"supplier_id"`
	ScreenName   string                `json:"screen_name"`
	ScreenType   enums.ScreenType      `json:"screen_type"`
	Location     string                `json:"location"`
	Region       string                `json:"region"`
	GPSLat       *float64              `json:"gps_lat,omitempty"`
	GPSLng       *float64              `json:"gps_lng,omitempty"`
	Dimensions   string                `json:"dimensions,omitempty"`
	Resolution   string                `json:"resolution,omitempty"`
	Facing       string                `json:"facing,omitempty"`
	DailyRate    decimal.Decimal       `json:"daily_rate"`
	WeeklyRate   decimal.Decimal       `json:"weekly_rate"`
	MonthlyRate  decimal.Decimal       `json:"monthly_rate"`
	Status       enums.InventoryStatus `json:"status"`
	Illuminated  bool                  `json:"illuminated"`
	Digital      bool                  `json:"digital"`
	TrafficCount *int64                `json:"traffic_count,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
	IsActive     bool                  `json:"is_active"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CreateInventoryItemInput holds the data required to register a site.
type CreateInventoryItemInput struct {
	SupplierID   *uuid.UUID
	ScreenName   string
	ScreenType   string
	Location     string
	Region       string
	GPSLat       *float64
	GPSLng       *float64
	Dimensions   string
	Resolution   string
	Facing       string
	DailyRate    decimal.Decimal
	WeeklyRate   decimal.Decimal
	MonthlyRate  decimal.Decimal
	Illuminated  bool
	Digital      bool
	TrafficCount *int64
	Notes        *string
}

// UpdateInventoryItemInput captures the mutable inventory fields.
type UpdateInventoryItemInput struct {
	ScreenName   *string
	ScreenType   *enums.ScreenType
	Location     *string
	Region       *string
	GPSLat       *float64
	GPSLng       *float64
	Dimensions   *string
	Resolution   *string
	Facing       *string
	DailyRate    *decimal.Decimal
	WeeklyRate   *decimal.Decimal
	MonthlyRate  *decimal.Decimal
	Status       *enums.InventoryStatus
	Illuminated  *bool
	Digital      *bool
	TrafficCount *int64
	Notes        *string
	IsActive     *bool
}

// ListInventoryFilter narrows inventory listings. SupplierID is overridden for
// supplier-scoped actors before the query runs.
type ListInventoryFilter struct {
	SupplierID *uuid.UUID
	Region     *string
	ScreenType *enums.ScreenType
	Status     *enums.InventoryStatus
	Digital    *bool
	Active     *bool
	Limit      int
}

// FromModel maps the persisted inventory item into a DTO.
func FromModel(m *models.InventoryItem) *InventoryItemDTO {
	if m == nil {
		return nil
	}
	return &InventoryItemDTO{
		ID:           m.ID,
		SupplierID:   m.SupplierID,
		ScreenName:   m.ScreenName,
		ScreenType:   m.ScreenType,
		Location:     m.Location,
		Region:       m.Region,
		GPSLat:       m.GPSLat,
		GPSLng:       m.GPSLng,
		Dimensions:   m.Dimensions,
		Resolution:   m.Resolution,
		Facing:       m.Facing,
		DailyRate:    m.DailyRate,
		WeeklyRate:   m.WeeklyRate,
		MonthlyRate:  m.MonthlyRate,
		Status:       m.Status,
		Illuminated:  m.Illuminated,
		Digital:      m.Digital,
		TrafficCount: m.TrafficCount,
		Notes:        m.Notes,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
