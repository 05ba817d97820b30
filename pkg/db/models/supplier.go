package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Supplier represents an OOH media owner the department books inventory from.
type Supplier struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string         `gorm:"type:text;not null"`
	ContactPerson string         `gorm:"column:contact_person;not null"`
	Email         string         `gorm:"type:text;not null"`
	Phone         string         `gorm:"type:text;not null"`
	Address       string         `gorm:"type:text;not null"`
	RegionsServed pq.StringArray `gorm:"column:regions_served;type:text[]"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
