package bookings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// BookingDTO exposes booking data in API responses.
type BookingDTO struct {
	ID              uuid.UUID           `json:"id"`
	CampaignID      uuid.UUID           `json:"campaign_id"`
	SupplierID      uuid.UUID           `json:"supplier_id"`
	SiteDescription string              `json:"site_description"`
	Location        string              `json:"location"`
	MediaType       enums.MediaType     `json:"media_type"`
	Cost            decimal.Decimal     `json:"cost"`
	Status          enums.BookingStatus `json:"status"`
	StartDate       time.Time           `json:"start_date"`
	EndDate         time.Time           `json:"end_date"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// CreateBookingInput holds the data required to reserve a site.
type CreateBookingInput struct {
	CampaignID      uuid.UUID
	SupplierID      uuid.UUID
	SiteDescription string
	Location        string
	MediaType       string
	Cost            decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
}

// UpdateBookingInput captures the mutable booking fields.
type UpdateBookingInput struct {
	SiteDescription *string
	Location        *string
	MediaType       *enums.MediaType
	Cost            *decimal.Decimal
	Status          *enums.BookingStatus
	StartDate       *time.Time
	EndDate         *time.Time
}

// ListBookingsFilter narrows booking listings.
type ListBookingsFilter struct {
	CampaignID *uuid.UUID
	SupplierID *uuid.UUID
	Status     *enums.BookingStatus
	Limit      int
}

// FromModel maps the persisted booking into a DTO.
func FromModel(m *models.Booking) *BookingDTO {
	if m == nil {
		return nil
	}
	return &BookingDTO{
		ID:              m.ID,
		CampaignID:      m.CampaignID,
		SupplierID:      m.SupplierID,
		SiteDescription: m.SiteDescription,
		Location:        m.Location,
		MediaType:       m.MediaType,
		Cost:            m.Cost,
		Status:          m.Status,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
