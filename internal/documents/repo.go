package documents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Repository handles document persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to document operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new document row.
func (r *Repository) Create(ctx context.Context, document *models.Document) error {
	if document == nil {
		return fmt.Errorf("document is required")
	}
	return r.db.WithContext(ctx).Create(document).Error
}

// FindByID loads a document by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// List returns documents matching the provided filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListDocumentsFilter) ([]models.Document, error) {
	query := r.db.WithContext(ctx).Model(&models.Document{})
	if filter.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filter.CampaignID)
	}
	if filter.BookingID != nil {
		query = query.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	var rows []models.Document
	if err := query.
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided document.
func (r *Repository) Update(ctx context.Context, document *models.Document) error {
	if document == nil {
		return fmt.Errorf("document is required")
	}
	return r.db.WithContext(ctx).Save(document).Error
}

// Delete removes a document row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
