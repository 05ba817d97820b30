package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/config"
	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type stubUserRepo struct {
	user    *models.User
	users   []models.User
	err     error
	created *CreateUserDTO
	updated *models.User
}

func (s *stubUserRepo) Create(_ context.Context, dto CreateUserDTO) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &dto
	user := dto.ToModel()
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	return user, nil
}

func (s *stubUserRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) List(_ context.Context, _ ListUsersFilter) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

func (s *stubUserRepo) Update(_ context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	s.updated = user
	return nil
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

func baseUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "planner",
		FullName: "Campaign Planner",
		Email:    "planner@oohdesk.gov.za",
		Role:     enums.RoleCampaignPlanner,
		IsActive: true,
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil, testPasswordConfig())
	if err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestServiceCreateHashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateUserInput{
		Username: "admin",
		Password: "admin123",
		FullName: "Dept Admin",
		Email:    "admin@oohdesk.gov.za",
		Role:     "department_admin",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if dto.Role != enums.RoleDepartmentAdmin {
		t.Fatalf("expected department_admin role, got %s", dto.Role)
	}
	if repo.created == nil {
		t.Fatal("expected repo create call")
	}
	if repo.created.PasswordHash == "admin123" || repo.created.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}
	if !strings.HasPrefix(repo.created.PasswordHash, "$argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", repo.created.PasswordHash)
	}
}

func TestServiceCreateInvalidRole(t *testing.T) {
	svc, err := NewService(&stubUserRepo{}, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), CreateUserInput{
		Username: "x",
		Password: "secret123",
		Role:     "superuser",
	})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceCreateSupplierRoleRequiresAffiliation(t *testing.T) {
	svc, err := NewService(&stubUserRepo{}, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), CreateUserInput{
		Username: "supplier",
		Password: "supplier123",
		Role:     "supplier_admin",
	})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["supplier_id"] == "" {
		t.Fatalf("expected supplier_id detail, got %v", typed.Details())
	}
}

func TestServiceCreateDuplicateUsername(t *testing.T) {
	repo := &stubUserRepo{err: errors.New(`duplicate key value violates unique constraint "users_username_key"`)}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), CreateUserInput{
		Username: "admin",
		Password: "admin123",
		Role:     "department_admin",
	})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", gotErr)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	repo := &stubUserRepo{err: gorm.ErrRecordNotFound}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetByID(context.Background(), uuid.New())
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestServiceUpdateAppliesFields(t *testing.T) {
	user := baseUser()
	repo := &stubUserRepo{user: user}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	newName := "Renamed Planner"
	newRole := enums.RoleFinanceOfficer
	dto, err := svc.Update(context.Background(), user.ID, UpdateUserInput{
		FullName: &newName,
		Role:     &newRole,
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if dto.FullName != newName {
		t.Fatalf("expected full name %q got %q", newName, dto.FullName)
	}
	if dto.Role != newRole {
		t.Fatalf("expected role %s got %s", newRole, dto.Role)
	}
	if repo.updated == nil {
		t.Fatal("expected repo update call")
	}
}

func TestServiceUpdateRejectsInvalidRole(t *testing.T) {
	user := baseUser()
	repo := &stubUserRepo{user: user}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	bad := enums.Role("root")
	_, gotErr := svc.Update(context.Background(), user.ID, UpdateUserInput{Role: &bad})
	if gotErr == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestServiceDeactivateFlipsFlag(t *testing.T) {
	user := baseUser()
	repo := &stubUserRepo{user: user}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.Deactivate(context.Background(), user.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if repo.updated == nil || repo.updated.IsActive {
		t.Fatal("expected user marked inactive")
	}
}
