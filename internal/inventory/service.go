package inventory

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

type inventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, filter ListInventoryFilter) ([]models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes inventory operations. Every method takes the acting user:
// government roles operate on the full inventory, supplier roles only on rows
// owned by their own supplier.
type Service interface {
	Create(ctx context.Context, actor Actor, input CreateInventoryItemInput) (*InventoryItemDTO, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*InventoryItemDTO, error)
	List(ctx context.Context, actor Actor, filter ListInventoryFilter) ([]InventoryItemDTO, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateInventoryItemInput) (*InventoryItemDTO, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type service struct {
	repo      inventoryRepository
	suppliers supplierChecker
}

// NewService builds an inventory service with the provided repository.
func NewService(repo inventoryRepository, suppliers supplierChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if suppliers == nil {
		return nil, fmt.Errorf("supplier checker required")
	}
	return &service{repo: repo, suppliers: suppliers}, nil
}

func (s *service) Create(ctx context.Context, actor Actor, input CreateInventoryItemInput) (*InventoryItemDTO, error) {
	screenType, err := enums.ParseScreenType(input.ScreenType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid screen type").
			WithDetails(map[string]string{"screen_type": "is invalid"})
	}
	if input.DailyRate.IsNegative() || input.WeeklyRate.IsNegative() || input.MonthlyRate.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rates cannot be negative").
			WithDetails(map[string]string{"daily_rate": "must be zero or positive"})
	}

	supplierID, err := s.resolveSupplierID(actor, input.SupplierID)
	if err != nil {
		return nil, err
	}

	ok, err := s.suppliers.Exists(ctx, supplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check supplier")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier does not exist").
			WithDetails(map[string]string{"supplier_id": "is unknown"})
	}

	item := &models.InventoryItem{
		SupplierID:   supplierID,
		ScreenName:   input.ScreenName,
		ScreenType:   screenType,
		Location:     input.Location,
		Region:       input.Region,
		GPSLat:       input.GPSLat,
		GPSLng:       input.GPSLng,
		Dimensions:   input.Dimensions,
		Resolution:   input.Resolution,
		Facing:       input.Facing,
		DailyRate:    input.DailyRate,
		WeeklyRate:   input.WeeklyRate,
		MonthlyRate:  input.MonthlyRate,
		Status:       enums.InventoryStatusAvailable,
		Illuminated:  input.Illuminated,
		Digital:      input.Digital,
		TrafficCount: input.TrafficCount,
		Notes:        input.Notes,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create inventory item")
	}
	return FromModel(item), nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*InventoryItemDTO, error) {
	item, err := s.findVisibleItem(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return FromModel(item), nil
}

// List applies the actor's supplier scope before querying. A supplier actor
// without an affiliation sees nothing rather than everything.
func (s *service) List(ctx context.Context, actor Actor, filter ListInventoryFilter) ([]InventoryItemDTO, error) {
	if actor.Role.SupplierScoped() {
		if actor.SupplierID == nil {
			return []InventoryItemDTO{}, nil
		}
		filter.SupplierID = actor.SupplierID
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}
	dtos := make([]InventoryItemDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateInventoryItemInput) (*InventoryItemDTO, error) {
	item, err := s.findVisibleItem(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.ScreenName != nil {
		item.ScreenName = *input.ScreenName
	}
	if input.ScreenType != nil {
		if !input.ScreenType.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid screen type").
				WithDetails(map[string]string{"screen_type": "is invalid"})
		}
		item.ScreenType = *input.ScreenType
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.Region != nil {
		item.Region = *input.Region
	}
	if input.GPSLat != nil {
		item.GPSLat = input.GPSLat
	}
	if input.GPSLng != nil {
		item.GPSLng = input.GPSLng
	}
	if input.Dimensions != nil {
		item.Dimensions = *input.Dimensions
	}
	if input.Resolution != nil {
		item.Resolution = *input.Resolution
	}
	if input.Facing != nil {
		item.Facing = *input.Facing
	}
	if input.DailyRate != nil {
		if input.DailyRate.IsNegative() {
			return nil, negativeRateError("daily_rate")
		}
		item.DailyRate = *input.DailyRate
	}
	if input.WeeklyRate != nil {
		if input.WeeklyRate.IsNegative() {
			return nil, negativeRateError("weekly_rate")
		}
		item.WeeklyRate = *input.WeeklyRate
	}
	if input.MonthlyRate != nil {
		if input.MonthlyRate.IsNegative() {
			return nil, negativeRateError("monthly_rate")
		}
		item.MonthlyRate = *input.MonthlyRate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid inventory status").
				WithDetails(map[string]string{"status": "is invalid"})
		}
		item.Status = *input.Status
	}
	if input.Illuminated != nil {
		item.Illuminated = *input.Illuminated
	}
	if input.Digital != nil {
		item.Digital = *input.Digital
	}
	if input.TrafficCount != nil {
		item.TrafficCount = input.TrafficCount
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update inventory item")
	}
	return FromModel(item), nil
}

func (s *service) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.findVisibleItem(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete inventory item")
	}
	return nil
}

// resolveSupplierID decides which supplier a new row belongs to. Supplier
// actors always write into their own supplier; any supplier_id they submit is
// ignored. Government actors must name the supplier explicitly.
func (s *service) resolveSupplierID(actor Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if actor.Role.SupplierScoped() {
		if actor.SupplierID == nil {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "account has no supplier affiliation")
		}
		return *actor.SupplierID, nil
	}
	if requested == nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier is required").
			WithDetails(map[string]string{"supplier_id": "is required"})
	}
	return *requested, nil
}

// findVisibleItem loads a row and hides it from foreign supplier actors. A
// row outside the actor's scope reads as not found, not forbidden, so its
// existence is not leaked.
func (s *service) findVisibleItem(ctx context.Context, actor Actor, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory item")
	}
	if actor.Role.SupplierScoped() {
		if actor.SupplierID == nil || item.SupplierID != *actor.SupplierID {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
		}
	}
	return item, nil
}

func negativeRateError(field string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "rates cannot be negative").
		WithDetails(map[string]string{field: "must be zero or positive"})
}
