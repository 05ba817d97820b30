package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// Repository runs the aggregate queries backing the dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to dashboard queries.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountCampaigns returns the total number of campaigns, optionally narrowed
// to one status.
func (r *Repository) CountCampaigns(ctx context.Context, status *enums.CampaignStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Campaign{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBookings returns the total number of bookings, optionally narrowed to
// one status.
func (r *Repository) CountBookings(ctx context.Context, status *enums.BookingStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Booking{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumBookingCosts returns the exact decimal sum of all booking costs. An
// empty table sums to zero, not NULL.
func (r *Repository) SumBookingCosts(ctx context.Context) (decimal.Decimal, error) {
	var raw string
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
