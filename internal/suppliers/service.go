package suppliers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
)

type supplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	List(ctx context.Context, filter ListSuppliersFilter) ([]models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
}

// Service exposes supplier operations.
type Service interface {
	Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SupplierDTO, error)
	List(ctx context.Context, filter ListSuppliersFilter) ([]SupplierDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo supplierRepository
}

// NewService builds a supplier service with the provided repository.
func NewService(repo supplierRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("supplier repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error) {
	supplier := input.ToModel()
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create supplier")
	}
	return FromModel(supplier), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.findSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(supplier), nil
}

func (s *service) List(ctx context.Context, filter ListSuppliersFilter) ([]SupplierDTO, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}
	dtos := make([]SupplierDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error) {
	supplier, err := s.findSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.RegionsServed != nil {
		supplier.RegionsServed = *input.RegionsServed
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update supplier")
	}
	return FromModel(supplier), nil
}

// Deactivate flips the active flag; supplier rows are never hard-deleted
// because bookings and inventory reference them.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.findSupplier(ctx, id)
	if err != nil {
		return err
	}
	supplier.IsActive = false
	if err := s.repo.Update(ctx, supplier); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivate supplier")
	}
	return nil
}

func (s *service) findSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}
	return supplier, nil
}
