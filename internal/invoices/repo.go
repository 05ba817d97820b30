package invoices

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/pagination"
)

// Repository handles invoice persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to invoice operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new invoice row. The unique index on invoice_number
// rejects duplicates at the database.
func (r *Repository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice == nil {
		return fmt.Errorf("invoice is required")
	}
	return r.db.WithContext(ctx).Create(invoice).Error
}

// FindByID loads an invoice by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices matching the provided filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListInvoicesFilter) ([]models.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&models.Invoice{})
	if filter.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filter.CampaignID)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	var rows []models.Invoice
	if err := query.
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(filter.Limit)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided invoice.
func (r *Repository) Update(ctx context.Context, invoice *models.Invoice) error {
	if invoice == nil {
		return fmt.Errorf("invoice is required")
	}
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete removes an invoice row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
