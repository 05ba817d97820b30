package bookings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Repository handles booking persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to booking operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new booking row.
func (r *Repository) Create(ctx context.Context, booking *models.Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is required")
	}
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByID loads a booking by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns bookings matching the provided filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListBookingsFilter) ([]models.Booking, error) {
	query := r.db.WithContext(ctx).Model(&models.Booking{})
	if filter.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filter.CampaignID)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	var rows []models.Booking
	if err := query.
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided booking.
func (r *Repository) Update(ctx context.Context, booking *models.Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is required")
	}
	return r.db.WithContext(ctx).Save(booking).Error
}

// Delete removes a booking row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a booking with the given ID exists.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
