package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/internal/users"
	pkgauth "github.com/oohdesk/oohdesk-backend/pkg/auth"
	"github.com/oohdesk/oohdesk-backend/pkg/auth/session"
	"github.com/oohdesk/oohdesk-backend/pkg/config"
	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/security"
)

type credentialStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionRegistry interface {
	Create(ctx context.Context, accessID string, userID string) error
	Revoke(ctx context.Context, accessID string) error
}

// Service authenticates users and manages their sessions.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, accessID string) error
}

type service struct {
	store    credentialStore
	sessions sessionRegistry
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewService builds the auth service.
func NewService(store credentialStore, sessions sessionRegistry, jwtCfg config.JWTConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("credential store required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session registry required")
	}
	return &service{
		store:    store,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}, nil
}

// Login verifies credentials, mints a token, and registers its session.
// Every failure path returns the same message so callers cannot probe for
// valid usernames.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.store.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials()
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	if !user.IsActive {
		return nil, invalidCredentials()
	}

	match, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return nil, invalidCredentials()
	}

	accessID := session.NewAccessID()
	now := s.now()
	token, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		UserID:     user.ID,
		Role:       user.Role,
		SupplierID: user.SupplierID,
		JTI:        accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	if err := s.sessions.Create(ctx, accessID, user.ID.String()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register session")
	}

	if err := s.store.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record login")
	}
	user.LastLoginAt = &now

	return &LoginResult{
		Token: token,
		User:  *users.FromModel(user),
	}, nil
}

// Logout revokes the server-side session for the access ID. Revoking an
// already-dead session is a no-op.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func invalidCredentials() error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}
