package campaigns

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type stubCampaignRepo struct {
	campaign *models.Campaign
	rows     []models.Campaign
	err      error
	updated  *models.Campaign
	deleted  *uuid.UUID
}

func (s *stubCampaignRepo) Create(_ context.Context, campaign *models.Campaign) error {
	if s.err != nil {
		return s.err
	}
	campaign.ID = uuid.New()
	return nil
}

func (s *stubCampaignRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Campaign, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.campaign, nil
}

func (s *stubCampaignRepo) List(_ context.Context, _ ListCampaignsFilter) ([]models.Campaign, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubCampaignRepo) Update(_ context.Context, campaign *models.Campaign) error {
	if s.err != nil {
		return s.err
	}
	s.updated = campaign
	return nil
}

func (s *stubCampaignRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = &id
	return nil
}

func baseCampaign() *models.Campaign {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return &models.Campaign{
		ID:          uuid.New(),
		Name:        "Road Safety Winter Drive",
		Description: "Seasonal awareness placements",
		Status:      enums.CampaignStatusDraft,
		Budget:      decimal.RequireFromString("250000.00"),
		StartDate:   start,
		EndDate:     start.AddDate(0, 2, 0),
		Region:      "Gauteng",
		TargetReach: 1500000,
		CreatedBy:   uuid.New(),
	}
}

func validCreateInput() CreateCampaignInput {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return CreateCampaignInput{
		Name:        "Taxi Rank Takeover",
		Description: "Commuter-focused placements",
		Budget:      decimal.RequireFromString("95000.50"),
		StartDate:   start,
		EndDate:     start.AddDate(0, 1, 0),
		Region:      "Western Cape",
		TargetReach: 400000,
		CreatedBy:   uuid.New(),
	}
}

func TestServiceCreateStartsInDraft(t *testing.T) {
	svc, err := NewService(&stubCampaignRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	if dto.Status != enums.CampaignStatusDraft {
		t.Fatalf("expected draft status, got %s", dto.Status)
	}
	if !dto.Budget.Equal(decimal.RequireFromString("95000.50")) {
		t.Fatalf("expected budget preserved exactly, got %s", dto.Budget)
	}
}

func TestServiceCreateRejectsNegativeBudget(t *testing.T) {
	svc, err := NewService(&stubCampaignRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	input := validCreateInput()
	input.Budget = decimal.RequireFromString("-1.00")
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateRejectsInvertedDates(t *testing.T) {
	svc, err := NewService(&stubCampaignRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	input := validCreateInput()
	input.EndDate = input.StartDate.AddDate(0, 0, -1)
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	campaign := baseCampaign()
	repo := &stubCampaignRepo{campaign: campaign}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	approved := enums.CampaignStatusApproved
	dto, err := svc.Update(context.Background(), campaign.ID, UpdateCampaignInput{Status: &approved})
	if err != nil {
		t.Fatalf("update campaign: %v", err)
	}
	if dto.Status != enums.CampaignStatusApproved {
		t.Fatalf("expected approved status, got %s", dto.Status)
	}
}

func TestServiceUpdateRejectsInvalidStatus(t *testing.T) {
	campaign := baseCampaign()
	svc, err := NewService(&stubCampaignRepo{campaign: campaign})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	bad := enums.CampaignStatus("archived")
	_, gotErr := svc.Update(context.Background(), campaign.ID, UpdateCampaignInput{Status: &bad})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceDeleteNotFound(t *testing.T) {
	svc, err := NewService(&stubCampaignRepo{err: gorm.ErrRecordNotFound})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	gotErr := svc.Delete(context.Background(), uuid.New())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestServiceDeleteCallsRepo(t *testing.T) {
	repo := &stubCampaignRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	id := uuid.New()
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete campaign: %v", err)
	}
	if repo.deleted == nil || *repo.deleted != id {
		t.Fatal("expected delete call for id")
	}
}
