package invoices

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// InvoiceDTO exposes invoice data in API responses.
type InvoiceDTO struct {
	ID            uuid.UUID           `json:"id"`
	CampaignID    uuid.UUID           `json:"campaign_id"`
	SupplierID    *uuid.UUID          `json:"supplier_id,omitempty"`
	InvoiceNumber string              `json:"invoice_number"`
	Amount        decimal.Decimal     `json:"amount"`
	Status        enums.InvoiceStatus `json:"status"`
	IssuedAt      time.Time           `json:"issued_at"`
	DueAt         time.Time           `json:"due_at"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// CreateInvoiceInput holds the data required to raise an invoice.
type CreateInvoiceInput struct {
	CampaignID    uuid.UUID
	SupplierID    *uuid.UUID
	InvoiceNumber string
	Amount        decimal.Decimal
	IssuedAt      time.Time
	DueAt         time.Time
}

// UpdateInvoiceInput captures the mutable invoice fields.
type UpdateInvoiceInput struct {
	Amount   *decimal.Decimal
	Status   *enums.InvoiceStatus
	IssuedAt *time.Time
	DueAt    *time.Time
}

// ListInvoicesFilter narrows invoice listings.
type ListInvoicesFilter struct {
	CampaignID *uuid.UUID
	SupplierID *uuid.UUID
	Status     *enums.InvoiceStatus
	Limit      int
}

// FromModel maps the persisted invoice into a DTO.
func FromModel(m *models.Invoice) *InvoiceDTO {
	if m == nil {
		return nil
	}
	return &InvoiceDTO{
		ID:            m.ID,
		CampaignID:    m.CampaignID,
		SupplierID:    m.SupplierID,
		InvoiceNumber: m.InvoiceNumber,
		Amount:        m.Amount,
		Status:        m.Status,
		IssuedAt:      m.IssuedAt,
		DueAt:         m.DueAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
