package campaigns

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Repository handles campaign persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to campaign operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new campaign row.
func (r *Repository) Create(ctx context.Context, campaign *models.Campaign) error {
	if campaign == nil {
		return fmt.Errorf("campaign is required")
	}
	return r.db.WithContext(ctx).Create(campaign).Error
}

// FindByID loads a campaign by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// List returns campaigns matching the provided filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListCampaignsFilter) ([]models.Campaign, error) {
	query := r.db.WithContext(ctx).Model(&models.Campaign{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	var rows []models.Campaign
	if err := query.
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided campaign.
func (r *Repository) Update(ctx context.Context, campaign *models.Campaign) error {
	if campaign == nil {
		return fmt.Errorf("campaign is required")
	}
	return r.db.WithContext(ctx).Save(campaign).Error
}

// Delete removes a campaign row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Campaign{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists reports whether a campaign with the given ID exists.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Campaign{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
