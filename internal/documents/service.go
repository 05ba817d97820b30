package documents

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

type documentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context, filter ListDocumentsFilter) ([]models.Document, error)
	Update(ctx context.Context, document *models.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type campaignChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes document metadata operations.
type Service interface {
	Create(ctx context.Context, input CreateDocumentInput) (*DocumentDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DocumentDTO, error)
	List(ctx context.Context, filter ListDocumentsFilter) ([]DocumentDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDocumentInput) (*DocumentDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      documentRepository
	campaigns campaignChecker
	bookings  bookingChecker
}

// NewService builds a document service. Checkers validate the optional
// campaign and booking references at upload time.
func NewService(repo documentRepository, campaigns campaignChecker, bookings bookingChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("document repository required")
	}
	if campaigns == nil {
		return nil, fmt.Errorf("campaign checker required")
	}
	if bookings == nil {
		return nil, fmt.Errorf("booking checker required")
	}
	return &service{repo: repo, campaigns: campaigns, bookings: bookings}, nil
}

func (s *service) Create(ctx context.Context, input CreateDocumentInput) (*DocumentDTO, error) {
	docType, err := enums.ParseDocumentType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid document type").
			WithDetails(map[string]string{"type": "is invalid"})
	}
	if input.CampaignID == nil && input.BookingID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "document must reference a campaign or a booking").
			WithDetails(map[string]string{"campaign_id": "campaign_id or booking_id is required"})
	}
	// Proof-of-flighting captures carry the photo's GPS fix.
	if docType == enums.DocumentTypeProofOfFlighting && (input.GPSLat == nil || input.GPSLng == nil) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "proof of flighting requires GPS coordinates").
			WithDetails(map[string]string{"gps_lat": "is required", "gps_lng": "is required"})
	}

	if input.CampaignID != nil {
		ok, err := s.campaigns.Exists(ctx, *input.CampaignID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check campaign")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "campaign does not exist").
				WithDetails(map[string]string{"campaign_id": "is unknown"})
		}
	}
	if input.BookingID != nil {
		ok, err := s.bookings.Exists(ctx, *input.BookingID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check booking")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "booking does not exist").
				WithDetails(map[string]string{"booking_id": "is unknown"})
		}
	}

	document := &models.Document{
		CampaignID: input.CampaignID,
		BookingID:  input.BookingID,
		Type:       docType,
		FileName:   input.FileName,
		FileSize:   input.FileSize,
		MimeType:   input.MimeType,
		Status:     enums.DocumentStatusUploaded,
		GPSLat:     input.GPSLat,
		GPSLng:     input.GPSLng,
		CapturedAt: input.CapturedAt,
		UploadedBy: input.UploadedBy,
	}
	if err := s.repo.Create(ctx, document); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create document")
	}
	return FromModel(document), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*DocumentDTO, error) {
	document, err := s.findDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(document), nil
}

func (s *service) List(ctx context.Context, filter ListDocumentsFilter) ([]DocumentDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list documents")
	}
	dtos := make([]DocumentDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateDocumentInput) (*DocumentDTO, error) {
	document, err := s.findDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid document status").
				WithDetails(map[string]string{"status": "is invalid"})
		}
		document.Status = *input.Status
	}
	if input.GPSLat != nil {
		document.GPSLat = input.GPSLat
	}
	if input.GPSLng != nil {
		document.GPSLng = input.GPSLng
	}
	if input.CapturedAt != nil {
		document.CapturedAt = input.CapturedAt
	}

	if err := s.repo.Update(ctx, document); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update document")
	}
	return FromModel(document), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete document")
	}
	return nil
}

func (s *service) findDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	document, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load document")
	}
	return document, nil
}
