package invoices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type stubInvoiceRepo struct {
	invoice *models.Invoice
	rows    []models.Invoice
	err     error
	created *models.Invoice
	updated *models.Invoice
}

func (s *stubInvoiceRepo) Create(_ context.Context, invoice *models.Invoice) error {
	if s.err != nil {
		return s.err
	}
	invoice.ID = uuid.New()
	s.created = invoice
	return nil
}

func (s *stubInvoiceRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Invoice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.invoice, nil
}

func (s *stubInvoiceRepo) List(_ context.Context, _ ListInvoicesFilter) ([]models.Invoice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubInvoiceRepo) Update(_ context.Context, invoice *models.Invoice) error {
	if s.err != nil {
		return s.err
	}
	s.updated = invoice
	return nil
}

func (s *stubInvoiceRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

type stubCampaignChecker struct {
	exists bool
	err    error
}

func (s stubCampaignChecker) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.exists, s.err
}

func validCreateInput() CreateInvoiceInput {
	issued := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	return CreateInvoiceInput{
		CampaignID:    uuid.New(),
		InvoiceNumber: "INV-2025-0001",
		Amount:        decimal.RequireFromString("125000.00"),
		IssuedAt:      issued,
		DueAt:         issued.AddDate(0, 1, 0),
	}
}

func newTestService(t *testing.T, repo *stubInvoiceRepo, campaigns stubCampaignChecker) Service {
	t.Helper()
	svc, err := NewService(repo, campaigns)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceCreateStartsDraft(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := newTestService(t, repo, stubCampaignChecker{exists: true})

	dto, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if dto.Status != enums.InvoiceStatusDraft {
		t.Fatalf("expected draft status, got %s", dto.Status)
	}
	if !dto.Amount.Equal(decimal.RequireFromString("125000.00")) {
		t.Fatalf("expected amount preserved exactly, got %s", dto.Amount)
	}
}

func TestServiceCreateDuplicateNumberConflicts(t *testing.T) {
	repo := &stubInvoiceRepo{err: errors.New(`duplicate key value violates unique constraint "invoices_invoice_number_key"`)}
	svc := newTestService(t, repo, stubCampaignChecker{exists: true})

	_, gotErr := svc.Create(context.Background(), validCreateInput())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", gotErr)
	}
}

func TestServiceCreateRequiresNumber(t *testing.T) {
	svc := newTestService(t, &stubInvoiceRepo{}, stubCampaignChecker{exists: true})

	input := validCreateInput()
	input.InvoiceNumber = "   "
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateUnknownCampaign(t *testing.T) {
	svc := newTestService(t, &stubInvoiceRepo{}, stubCampaignChecker{exists: false})

	_, gotErr := svc.Create(context.Background(), validCreateInput())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateRejectsDueBeforeIssued(t *testing.T) {
	svc := newTestService(t, &stubInvoiceRepo{}, stubCampaignChecker{exists: true})

	input := validCreateInput()
	input.DueAt = input.IssuedAt.AddDate(0, 0, -1)
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	issued := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	invoice := &models.Invoice{
		ID:            uuid.New(),
		CampaignID:    uuid.New(),
		InvoiceNumber: "INV-2025-0002",
		Amount:        decimal.RequireFromString("5000.00"),
		Status:        enums.InvoiceStatusDraft,
		IssuedAt:      issued,
		DueAt:         issued.AddDate(0, 1, 0),
	}
	repo := &stubInvoiceRepo{invoice: invoice}
	svc := newTestService(t, repo, stubCampaignChecker{exists: true})

	sent := enums.InvoiceStatusSent
	dto, err := svc.Update(context.Background(), invoice.ID, UpdateInvoiceInput{Status: &sent})
	if err != nil {
		t.Fatalf("update invoice: %v", err)
	}
	if dto.Status != enums.InvoiceStatusSent {
		t.Fatalf("expected sent status, got %s", dto.Status)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	repo := &stubInvoiceRepo{err: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo, stubCampaignChecker{exists: true})

	_, gotErr := svc.GetByID(context.Background(), uuid.New())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}
