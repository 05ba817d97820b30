package documents

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type stubDocumentRepo struct {
	document *models.Document
	rows     []models.Document
	err      error
	created  *models.Document
	updated  *models.Document
}

func (s *stubDocumentRepo) Create(_ context.Context, document *models.Document) error {
	if s.err != nil {
		return s.err
	}
	document.ID = uuid.New()
	s.created = document
	return nil
}

func (s *stubDocumentRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.document, nil
}

func (s *stubDocumentRepo) List(_ context.Context, _ ListDocumentsFilter) ([]models.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubDocumentRepo) Update(_ context.Context, document *models.Document) error {
	if s.err != nil {
		return s.err
	}
	s.updated = document
	return nil
}

func (s *stubDocumentRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

type stubChecker struct {
	exists bool
	err    error
}

func (s stubChecker) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.exists, s.err
}

func validCreateInput() CreateDocumentInput {
	campaignID := uuid.New()
	return CreateDocumentInput{
		CampaignID: &campaignID,
		Type:       "artwork",
		FileName:   "billboard-artwork-v2.pdf",
		FileSize:   482133,
		MimeType:   "application/pdf",
		UploadedBy: uuid.New(),
	}
}

func newTestService(t *testing.T, repo *stubDocumentRepo, campaigns, bookings stubChecker) Service {
	t.Helper()
	svc, err := NewService(repo, campaigns, bookings)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceCreateStartsUploaded(t *testing.T) {
	repo := &stubDocumentRepo{}
	svc := newTestService(t, repo, stubChecker{exists: true}, stubChecker{exists: true})

	dto, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	if dto.Status != enums.DocumentStatusUploaded {
		t.Fatalf("expected uploaded status, got %s", dto.Status)
	}
	if dto.Type != enums.DocumentTypeArtwork {
		t.Fatalf("expected artwork type, got %s", dto.Type)
	}
}

func TestServiceCreateRequiresReference(t *testing.T) {
	svc := newTestService(t, &stubDocumentRepo{}, stubChecker{exists: true}, stubChecker{exists: true})

	input := validCreateInput()
	input.CampaignID = nil
	input.BookingID = nil
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateProofOfFlightingRequiresGPS(t *testing.T) {
	svc := newTestService(t, &stubDocumentRepo{}, stubChecker{exists: true}, stubChecker{exists: true})

	input := validCreateInput()
	input.Type = "proof_of_flighting"
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}

	lat, lng := -26.2041, 28.0473
	input.GPSLat = &lat
	input.GPSLng = &lng
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("create with gps: %v", err)
	}
}

func TestServiceCreateUnknownBooking(t *testing.T) {
	svc := newTestService(t, &stubDocumentRepo{}, stubChecker{exists: true}, stubChecker{exists: false})

	bookingID := uuid.New()
	input := validCreateInput()
	input.CampaignID = nil
	input.BookingID = &bookingID
	_, gotErr := svc.Create(context.Background(), input)
	if gotErr == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["booking_id"] == "" {
		t.Fatalf("expected booking_id detail, got %v", typed.Details())
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	campaignID := uuid.New()
	document := &models.Document{
		ID:         uuid.New(),
		CampaignID: &campaignID,
		Type:       enums.DocumentTypeArtwork,
		FileName:   "artwork.pdf",
		MimeType:   "application/pdf",
		Status:     enums.DocumentStatusUploaded,
		UploadedBy: uuid.New(),
	}
	repo := &stubDocumentRepo{document: document}
	svc := newTestService(t, repo, stubChecker{exists: true}, stubChecker{exists: true})

	validated := enums.DocumentStatusValidated
	dto, err := svc.Update(context.Background(), document.ID, UpdateDocumentInput{Status: &validated})
	if err != nil {
		t.Fatalf("update document: %v", err)
	}
	if dto.Status != enums.DocumentStatusValidated {
		t.Fatalf("expected validated status, got %s", dto.Status)
	}
}

func TestServiceDeleteNotFound(t *testing.T) {
	repo := &stubDocumentRepo{err: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo, stubChecker{exists: true}, stubChecker{exists: true})

	gotErr := svc.Delete(context.Background(), uuid.New())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}
