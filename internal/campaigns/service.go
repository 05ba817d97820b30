package campaigns

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type campaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	List(ctx context.Context, filter ListCampaignsFilter) ([]models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes campaign operations.
type Service interface {
	Create(ctx context.Context, input CreateCampaignInput) (*CampaignDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CampaignDTO, error)
	List(ctx context.Context, filter ListCampaignsFilter) ([]CampaignDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCampaignInput) (*CampaignDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo campaignRepository
}

// NewService builds a campaign service with the provided repository.
func NewService(repo campaignRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("campaign repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateCampaignInput) (*CampaignDTO, error) {
	if input.Budget.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "budget cannot be negative").
			WithDetails(map[string]string{"budget": "must be zero or positive"})
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date must be after start date").
			WithDetails(map[string]string{"end_date": "must be after start_date"})
	}
	if input.CreatedBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "missing campaign creator")
	}

	campaign := input.ToModel()
	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create campaign")
	}
	return FromModel(campaign), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*CampaignDTO, error) {
	campaign, err := s.findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(campaign), nil
}

func (s *service) List(ctx context.Context, filter ListCampaignsFilter) ([]CampaignDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list campaigns")
	}
	dtos := make([]CampaignDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCampaignInput) (*CampaignDTO, error) {
	campaign, err := s.findCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid campaign status").
				WithDetails(map[string]string{"status": "is invalid"})
		}
		campaign.Status = *input.Status
	}
	if input.Budget != nil {
		if input.Budget.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "budget cannot be negative").
				WithDetails(map[string]string{"budget": "must be zero or positive"})
		}
		campaign.Budget = *input.Budget
	}
	if input.StartDate != nil {
		campaign.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		campaign.EndDate = *input.EndDate
	}
	if !campaign.EndDate.After(campaign.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date must be after start date").
			WithDetails(map[string]string{"end_date": "must be after start_date"})
	}
	if input.Region != nil {
		campaign.Region = *input.Region
	}
	if input.TargetReach != nil {
		campaign.TargetReach = *input.TargetReach
	}

	if err := s.repo.Update(ctx, campaign); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update campaign")
	}
	return FromModel(campaign), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "campaign not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete campaign")
	}
	return nil
}

func (s *service) findCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "campaign not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load campaign")
	}
	return campaign, nil
}
