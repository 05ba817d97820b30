package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/config"
	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/security"
)

type stubCredentialStore struct {
	user        *models.User
	err         error
	lastLoginID *uuid.UUID
}

func (s *stubCredentialStore) FindByUsername(_ context.Context, _ string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubCredentialStore) UpdateLastLogin(_ context.Context, id uuid.UUID, _ time.Time) error {
	s.lastLoginID = &id
	return nil
}

type stubSessionRegistry struct {
	createdID string
	revokedID string
	err       error
}

func (s *stubSessionRegistry) Create(_ context.Context, accessID string, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.createdID = accessID
	return nil
}

func (s *stubSessionRegistry) Revoke(_ context.Context, accessID string) error {
	if s.err != nil {
		return s.err
	}
	s.revokedID = accessID
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "oohdesk-test",
		ExpirationMinutes: 60,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: hash,
		FullName:     "Dept Admin",
		Email:        "admin@oohdesk.gov.za",
		Role:         enums.RoleDepartmentAdmin,
		IsActive:     true,
	}
}

func newTestService(t *testing.T, store *stubCredentialStore, sessions *stubSessionRegistry) Service {
	t.Helper()
	svc, err := NewService(store, sessions, testJWTConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLoginSuccess(t *testing.T) {
	store := &stubCredentialStore{user: activeUser(t, "admin123")}
	sessions := &stubSessionRegistry{}
	svc := newTestService(t, store, sessions)

	result, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.Username != "admin" {
		t.Fatalf("expected user payload, got %+v", result.User)
	}
	if result.User.LastLoginAt == nil {
		t.Fatal("expected last login stamped")
	}
	if sessions.createdID == "" {
		t.Fatal("expected session registered")
	}
	if store.lastLoginID == nil {
		t.Fatal("expected last login persisted")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := &stubCredentialStore{user: activeUser(t, "admin123")}
	svc := newTestService(t, store, &stubSessionRegistry{})

	_, gotErr := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", gotErr)
	}
	if typed.Message() != "invalid credentials" {
		t.Fatalf("expected opaque message, got %q", typed.Message())
	}
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	store := &stubCredentialStore{err: gorm.ErrRecordNotFound}
	svc := newTestService(t, store, &stubSessionRegistry{})

	_, gotErr := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", gotErr)
	}
	if typed.Message() != "invalid credentials" {
		t.Fatalf("expected opaque message, got %q", typed.Message())
	}
}

func TestLoginInactiveUserRejected(t *testing.T) {
	user := activeUser(t, "admin123")
	user.IsActive = false
	store := &stubCredentialStore{user: user}
	svc := newTestService(t, store, &stubSessionRegistry{})

	_, gotErr := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "admin123"})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", gotErr)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := &stubSessionRegistry{}
	svc := newTestService(t, &stubCredentialStore{}, sessions)

	if err := svc.Logout(context.Background(), "access-id-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessions.revokedID != "access-id-1" {
		t.Fatalf("expected session revoked, got %q", sessions.revokedID)
	}
}
