package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// User represents the canonical identity entity. Accounts are deactivated via
// IsActive, never hard-deleted.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FullName     string     `gorm:"column:full_name;not null"`
	Email        string     `gorm:"type:text;not null"`
	Role         enums.Role `gorm:"column:role;type:text;not null"`
	SupplierID   *uuid.UUID `gorm:"column:supplier_id;type:uuid"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
