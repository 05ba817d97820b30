package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type campaignChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type supplierChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes booking operations.
type Service interface {
	Create(ctx context.Context, input CreateBookingInput) (*BookingDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingDTO, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]BookingDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*BookingDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      bookingRepository
	campaigns campaignChecker
	suppliers supplierChecker
}

// NewService builds a booking service. Campaign and supplier checkers guard
// referential integrity before rows are written.
func NewService(repo bookingRepository, campaigns campaignChecker, suppliers supplierChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if campaigns == nil {
		return nil, fmt.Errorf("campaign checker required")
	}
	if suppliers == nil {
		return nil, fmt.Errorf("supplier checker required")
	}
	return &service{repo: repo, campaigns: campaigns, suppliers: suppliers}, nil
}

func (s *service) Create(ctx context.Context, input CreateBookingInput) (*BookingDTO, error) {
	mediaType, err := enums.ParseMediaType(input.MediaType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media type").
			WithDetails(map[string]string{"media_type": "is invalid"})
	}
	if input.Cost.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cost cannot be negative").
			WithDetails(map[string]string{"cost": "must be zero or positive"})
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date must be after start date").
			WithDetails(map[string]string{"end_date": "must be after start_date"})
	}

	ok, err := s.campaigns.Exists(ctx, input.CampaignID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check campaign")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "campaign does not exist").
			WithDetails(map[string]string{"campaign_id": "is unknown"})
	}

	ok, err = s.suppliers.Exists(ctx, input.SupplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check supplier")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier does not exist").
			WithDetails(map[string]string{"supplier_id": "is unknown"})
	}

	booking := &models.Booking{
		CampaignID:      input.CampaignID,
		SupplierID:      input.SupplierID,
		SiteDescription: input.SiteDescription,
		Location:        input.Location,
		MediaType:       mediaType,
		Cost:            input.Cost,
		Status:          enums.BookingStatusPending,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking")
	}
	return FromModel(booking), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*BookingDTO, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(booking), nil
}

func (s *service) List(ctx context.Context, filter ListBookingsFilter) ([]BookingDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	dtos := make([]BookingDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*BookingDTO, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SiteDescription != nil {
		booking.SiteDescription = *input.SiteDescription
	}
	if input.Location != nil {
		booking.Location = *input.Location
	}
	if input.MediaType != nil {
		if !input.MediaType.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media type").
				WithDetails(map[string]string{"media_type": "is invalid"})
		}
		booking.MediaType = *input.MediaType
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cost cannot be negative").
				WithDetails(map[string]string{"cost": "must be zero or positive"})
		}
		booking.Cost = *input.Cost
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status").
				WithDetails(map[string]string{"status": "is invalid"})
		}
		booking.Status = *input.Status
	}
	if input.StartDate != nil {
		booking.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		booking.EndDate = *input.EndDate
	}
	if !booking.EndDate.After(booking.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date must be after start date").
			WithDetails(map[string]string{"end_date": "must be after start_date"})
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update booking")
	}
	return FromModel(booking), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete booking")
	}
	return nil
}

func (s *service) findBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}
	return booking, nil
}
