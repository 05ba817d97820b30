package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// UserDTO exposes safe account data in API responses. The password hash never
// leaves the service layer.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Role        enums.Role `json:"role"`
	SupplierID  *uuid.UUID `json:"supplier_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateUserDTO holds creation-time data for a new account.
type CreateUserDTO struct {
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	Role         enums.Role
	SupplierID   *uuid.UUID
}

// UpdateUserInput captures the mutable account fields.
type UpdateUserInput struct {
	FullName   *string
	Email      *string
	Role       *enums.Role
	SupplierID *uuid.UUID
	IsActive   *bool
}

// ListUsersFilter narrows account listings.
type ListUsersFilter struct {
	Role   *enums.Role
	Active *bool
	Limit  int
}

// FromModel maps the persisted user into a DTO.
func FromModel(m *models.User) *UserDTO {
	if m == nil {
		return nil
	}
	return &UserDTO{
		ID:          m.ID,
		Username:    m.Username,
		FullName:    m.FullName,
		Email:       m.Email,
		Role:        m.Role,
		SupplierID:  m.SupplierID,
		IsActive:    m.IsActive,
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from creation DTO.
func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		FullName:     c.FullName,
		Email:        c.Email,
		Role:         c.Role,
		SupplierID:   c.SupplierID,
		IsActive:     true,
	}
}
