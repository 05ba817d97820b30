package suppliers

import (
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
)

// SupplierDTO exposes supplier data in API responses.
type SupplierDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	RegionsServed []string  `json:"regions_served"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateSupplierInput holds the data needed to register a media owner.
type CreateSupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	RegionsServed []string
}

// UpdateSupplierInput captures the mutable supplier fields.
type UpdateSupplierInput struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	RegionsServed *[]string
	IsActive      *bool
}

// ListSuppliersFilter narrows supplier listings.
type ListSuppliersFilter struct {
	Active *bool
	Region *string
	Limit  int
}

// FromModel maps the persisted supplier into a DTO.
func FromModel(m *models.Supplier) *SupplierDTO {
	if m == nil {
		return nil
	}
	regions := make([]string, len(m.RegionsServed))
	copy(regions, m.RegionsServed)
	return &SupplierDTO{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		RegionsServed: regions,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation input.
func (c CreateSupplierInput) ToModel() *models.Supplier {
	return &models.Supplier{
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		RegionsServed: c.RegionsServed,
		IsActive:      true,
	}
}
