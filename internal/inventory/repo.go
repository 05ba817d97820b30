package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Repository handles inventory persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to inventory operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new inventory row.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) error {
	if item == nil {
		return fmt.Errorf("inventory item is required")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID loads an inventory item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns inventory rows matching the provided filter.
func (r *Repository) List(ctx context.Context, filter ListInventoryFilter) ([]models.InventoryItem, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryItem{})
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.ScreenType != nil {
		query = query.Where("screen_type = ?", *filter.ScreenType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Digital != nil {
		query = query.Where("digital = ?", *filter.Digital)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	var rows []models.InventoryItem
	if err := query.
		Order("screen_name ASC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided inventory item.
func (r *Repository) Update(ctx context.Context, item *models.InventoryItem) error {
	if item == nil {
		return fmt.Errorf("inventory item is required")
	}
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an inventory row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
