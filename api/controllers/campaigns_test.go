package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/oohdesk/oohdesk-backend/api/middleware"
	campaignsvc "github.com/oohdesk/oohdesk-backend/internal/campaigns"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

type stubCampaignService struct {
	createInput campaignsvc.CreateCampaignInput
	campaign    *campaignsvc.CampaignDTO
	campaigns   []campaignsvc.CampaignDTO
	err         error
}

func (s *stubCampaignService) Create(ctx context.Context, input campaignsvc.CreateCampaignInput) (*campaignsvc.CampaignDTO, error) {
	s.createInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.campaign, nil
}

func (s *stubCampaignService) GetByID(ctx context.Context, id uuid.UUID) (*campaignsvc.CampaignDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.campaign, nil
}

func (s *stubCampaignService) List(ctx context.Context, filter campaignsvc.ListCampaignsFilter) ([]campaignsvc.CampaignDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.campaigns, nil
}

func (s *stubCampaignService) Update(ctx context.Context, id uuid.UUID, input campaignsvc.UpdateCampaignInput) (*campaignsvc.CampaignDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.campaign, nil
}

func (s *stubCampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func TestCreateCampaign(t *testing.T) {
	logg := testLogger()
	userID := uuid.New()

	body := `{
		"name": "Road Safety Winter Drive",
		"budget": "500000.00",
		"start_date": "2025-06-01T00:00:00Z",
		"end_date": "2025-08-31T00:00:00Z",
		"region": "Gauteng"
	}`

	t.Run("budget parsed exactly and creator stamped", func(t *testing.T) {
		stub := &stubCampaignService{campaign: &campaignsvc.CampaignDTO{ID: uuid.New(), Status: enums.CampaignStatusDraft}}
		ctx := middleware.WithUserID(context.Background(), userID.String())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body)).WithContext(ctx)
		rec := httptest.NewRecorder()
		CreateCampaign(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if stub.createInput.Budget.String() != "500000" && stub.createInput.Budget.String() != "500000.00" {
			t.Fatalf("unexpected budget %s", stub.createInput.Budget)
		}
		if stub.createInput.CreatedBy != userID {
			t.Fatalf("expected creator %s, got %s", userID, stub.createInput.CreatedBy)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		stub := &stubCampaignService{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CreateCampaign(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("non-numeric budget", func(t *testing.T) {
		stub := &stubCampaignService{}
		bad := strings.Replace(body, `"500000.00"`, `"half a million"`, 1)
		ctx := middleware.WithUserID(context.Background(), userID.String())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(bad)).WithContext(ctx)
		rec := httptest.NewRecorder()
		CreateCampaign(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestListCampaignsStatusFilter(t *testing.T) {
	logg := testLogger()

	t.Run("invalid status", func(t *testing.T) {
		stub := &stubCampaignService{}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns?status=launching", nil)
		rec := httptest.NewRecorder()
		ListCampaigns(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("valid status", func(t *testing.T) {
		stub := &stubCampaignService{campaigns: []campaignsvc.CampaignDTO{}}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns?status=in_progress", nil)
		rec := httptest.NewRecorder()
		ListCampaigns(stub, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
