package suppliers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Repository handles supplier persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to supplier operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new supplier row.
func (r *Repository) Create(ctx context.Context, supplier *models.Supplier) error {
	if supplier == nil {
		return fmt.Errorf("supplier is required")
	}
	return r.db.WithContext(ctx).Create(supplier).Error
}

// FindByID loads a supplier by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List returns suppliers matching the provided filter.
func (r *Repository) List(ctx context.Context, filter ListSuppliersFilter) ([]models.Supplier, error) {
	query := r.db.WithContext(ctx).Model(&models.Supplier{})
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Region != nil {
		query = query.Where("? = ANY(regions_served)", *filter.Region)
	}
	var rows []models.Supplier
	if err := query.
		Order("name ASC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided supplier.
func (r *Repository) Update(ctx context.Context, supplier *models.Supplier) error {
	if supplier == nil {
		return fmt.Errorf("supplier is required")
	}
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Exists reports whether an active supplier with the given ID exists.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
