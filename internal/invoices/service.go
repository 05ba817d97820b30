package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db"
	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type invoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	List(ctx context.Context, filter ListInvoicesFilter) ([]models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type campaignChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes invoice operations.
type Service interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*InvoiceDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceDTO, error)
	List(ctx context.Context, filter ListInvoicesFilter) ([]InvoiceDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*InvoiceDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      invoiceRepository
	campaigns campaignChecker
}

// NewService builds an invoice service with the provided repository.
func NewService(repo invoiceRepository, campaigns campaignChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invoice repository required")
	}
	if campaigns == nil {
		return nil, fmt.Errorf("campaign checker required")
	}
	return &service{repo: repo, campaigns: campaigns}, nil
}

func (s *service) Create(ctx context.Context, input CreateInvoiceInput) (*InvoiceDTO, error) {
	number := strings.TrimSpace(input.InvoiceNumber)
	if number == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invoice number is required").
			WithDetails(map[string]string{"invoice_number": "is required"})
	}
	if input.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative").
			WithDetails(map[string]string{"amount": "must be zero or positive"})
	}
	if input.DueAt.Before(input.IssuedAt) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "due date cannot precede issue date").
			WithDetails(map[string]string{"due_at": "must not be before issued_at"})
	}

	ok, err := s.campaigns.Exists(ctx, input.CampaignID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check campaign")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "campaign does not exist").
			WithDetails(map[string]string{"campaign_id": "is unknown"})
	}

	invoice := &models.Invoice{
		CampaignID:    input.CampaignID,
		SupplierID:    input.SupplierID,
		InvoiceNumber: number,
		Amount:        input.Amount,
		Status:        enums.InvoiceStatusDraft,
		IssuedAt:      input.IssuedAt,
		DueAt:         input.DueAt,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "invoice number already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create invoice")
	}
	return FromModel(invoice), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceDTO, error) {
	invoice, err := s.findInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(invoice), nil
}

func (s *service) List(ctx context.Context, filter ListInvoicesFilter) ([]InvoiceDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list invoices")
	}
	dtos := make([]InvoiceDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*InvoiceDTO, error) {
	invoice, err := s.findInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative").
				WithDetails(map[string]string{"amount": "must be zero or positive"})
		}
		invoice.Amount = *input.Amount
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid invoice status").
				WithDetails(map[string]string{"status": "is invalid"})
		}
		invoice.Status = *input.Status
	}
	if input.IssuedAt != nil {
		invoice.IssuedAt = *input.IssuedAt
	}
	if input.DueAt != nil {
		invoice.DueAt = *input.DueAt
	}
	if invoice.DueAt.Before(invoice.IssuedAt) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "due date cannot precede issue date").
			WithDetails(map[string]string{"due_at": "must not be before issued_at"})
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update invoice")
	}
	return FromModel(invoice), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete invoice")
	}
	return nil
}

func (s *service) findInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load invoice")
	}
	return invoice, nil
}
