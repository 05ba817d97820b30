package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type statsRepository interface {
	CountCampaigns(ctx context.Context, status *enums.CampaignStatus) (int64, error)
	CountBookings(ctx context.Context, status *enums.BookingStatus) (int64, error)
	SumBookingCosts(ctx context.Context) (decimal.Decimal, error)
}

// Service computes dashboard statistics.
type Service interface {
	Stats(ctx context.Context) (*StatsDTO, error)
}

type service struct {
	repo statsRepository
}

// NewService builds a dashboard service with the provided repository.
func NewService(repo statsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository required")
	}
	return &service{repo: repo}, nil
}

// Stats recomputes every aggregate from the live tables on each call. No
// caching; the dashboard always reflects current data.
func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	totalCampaigns, err := s.repo.CountCampaigns(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count campaigns")
	}

	inProgress := enums.CampaignStatusInProgress
	activeCampaigns, err := s.repo.CountCampaigns(ctx, &inProgress)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count active campaigns")
	}

	totalBookings, err := s.repo.CountBookings(ctx, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count bookings")
	}

	totalSpend, err := s.repo.SumBookingCosts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum booking costs")
	}

	pending := enums.BookingStatusPending
	pendingBookings, err := s.repo.CountBookings(ctx, &pending)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count pending bookings")
	}

	completed := enums.BookingStatusCompleted
	completedBookings, err := s.repo.CountBookings(ctx, &completed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count completed bookings")
	}

	return &StatsDTO{
		TotalCampaigns:    totalCampaigns,
		ActiveCampaigns:   activeCampaigns,
		TotalBookings:     totalBookings,
		TotalSpend:        totalSpend,
		PendingBookings:   pendingBookings,
		CompletedBookings: completedBookings,
	}, nil
}
