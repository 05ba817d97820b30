package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/oohdesk/oohdesk-backend/pkg/config"
	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	pkgerrors "github.com/oohdesk/oohdesk-backend/pkg/errors"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/security"
)

// Result reports what the loader did.
type Result struct {
	Seeded    bool `json:"seeded"`
	Users     int  `json:"users"`
	Suppliers int  `json:"suppliers"`
	Inventory int  `json:"inventory_items"`
	Campaigns int  `json:"campaigns"`
	Bookings  int  `json:"bookings"`
	Invoices  int  `json:"invoices"`
	Documents int  `json:"documents"`
}

// Service loads the demo fixtures.
type Service interface {
	Run(ctx context.Context) (*Result, error)
}

type service struct {
	db          *gorm.DB
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
}

// NewService builds the seed loader.
func NewService(db *gorm.DB, passwordCfg config.PasswordConfig, logg *logger.Logger) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{db: db, passwordCfg: passwordCfg, logg: logg}, nil
}

// Run loads the demo data set inside one transaction. The loader is
// idempotent: when the admin account already exists nothing is written.
func (s *service) Run(ctx context.Context) (*Result, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", AdminUsername).First(&existing).Error
	if err == nil {
		s.logg.Info(ctx, "seed skipped, fixtures already loaded")
		return &Result{Seeded: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check admin user")
	}

	result := &Result{Seeded: true}
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		suppliersByName, err := s.seedSuppliers(tx, result)
		if err != nil {
			return err
		}
		usersByUsername, err := s.seedUsers(tx, suppliersByName, result)
		if err != nil {
			return err
		}
		if err := s.seedInventory(tx, suppliersByName, result); err != nil {
			return err
		}
		return s.seedCampaign(tx, suppliersByName, usersByUsername, result)
	})
	if txErr != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, txErr, "load seed fixtures")
	}

	s.logg.Info(ctx, "seed fixtures loaded")
	return result, nil
}

func (s *service) seedSuppliers(tx *gorm.DB, result *Result) (map[string]*models.Supplier, error) {
	byName := make(map[string]*models.Supplier, len(supplierFixtures))
	var errs error
	for i := range supplierFixtures {
		supplier := supplierFixtures[i]
		supplier.ID = uuid.New()
		if err := tx.Create(&supplier).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("supplier %s: %w", supplier.Name, err))
			continue
		}
		byName[supplier.Name] = &supplier
		result.Suppliers++
	}
	return byName, errs
}

func (s *service) seedUsers(tx *gorm.DB, suppliers map[string]*models.Supplier, result *Result) (map[string]*models.User, error) {
	byUsername := make(map[string]*models.User, len(userFixtures))
	var errs error
	for _, fixture := range userFixtures {
		hash, err := security.HashPassword(fixture.Password, s.passwordCfg)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("user %s: %w", fixture.Username, err))
			continue
		}
		user := models.User{
			ID:           uuid.New(),
			Username:     fixture.Username,
			PasswordHash: hash,
			FullName:     fixture.FullName,
			Email:        fixture.Email,
			Role:         fixture.Role,
			IsActive:     true,
		}
		if fixture.Supplier != "" {
			supplier, ok := suppliers[fixture.Supplier]
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("user %s: unknown supplier %s", fixture.Username, fixture.Supplier))
				continue
			}
			user.SupplierID = &supplier.ID
		}
		if err := tx.Create(&user).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("user %s: %w", fixture.Username, err))
			continue
		}
		byUsername[user.Username] = &user
		result.Users++
	}
	return byUsername, errs
}

func (s *service) seedInventory(tx *gorm.DB, suppliers map[string]*models.Supplier, result *Result) error {
	var errs error
	for _, fixture := range inventoryFixtures {
		supplier, ok := suppliers[fixture.Supplier]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("inventory %s: unknown supplier %s", fixture.ScreenName, fixture.Supplier))
			continue
		}
		item := models.InventoryItem{
			ID:          uuid.New(),
			SupplierID:  supplier.ID,
			ScreenName:  fixture.ScreenName,
			ScreenType:  fixture.ScreenType,
			Location:    fixture.Location,
			Region:      fixture.Region,
			DailyRate:   decimal.RequireFromString(fixture.DailyRate),
			WeeklyRate:  decimal.RequireFromString(fixture.WeeklyRate),
			MonthlyRate: decimal.RequireFromString(fixture.MonthlyRate),
			Status:      enums.InventoryStatusAvailable,
			Illuminated: fixture.Illuminated,
			Digital:     fixture.Digital,
			IsActive:    true,
		}
		if err := tx.Create(&item).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("inventory %s: %w", fixture.ScreenName, err))
			continue
		}
		result.Inventory++
	}
	return errs
}

func (s *service) seedCampaign(tx *gorm.DB, suppliers map[string]*models.Supplier, users map[string]*models.User, result *Result) error {
	planner, ok := users["planner"]
	if !ok {
		return fmt.Errorf("campaign: planner user missing")
	}

	campaign := campaignFixture(*planner)
	campaign.ID = uuid.New()
	if err := tx.Create(&campaign).Error; err != nil {
		return fmt.Errorf("campaign %s: %w", campaign.Name, err)
	}
	result.Campaigns++

	var errs error
	var firstBooking *models.Booking
	for _, fixture := range bookingFixtures {
		supplier, ok := suppliers[fixture.Supplier]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("booking %s: unknown supplier %s", fixture.SiteDescription, fixture.Supplier))
			continue
		}
		booking := models.Booking{
			ID:              uuid.New(),
			CampaignID:      campaign.ID,
			SupplierID:      supplier.ID,
			SiteDescription: fixture.SiteDescription,
			Location:        fixture.Location,
			MediaType:       fixture.MediaType,
			Cost:            decimal.RequireFromString(fixture.Cost),
			Status:          fixture.Status,
			StartDate:       campaign.StartDate,
			EndDate:         campaign.EndDate,
		}
		if err := tx.Create(&booking).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("booking %s: %w", fixture.SiteDescription, err))
			continue
		}
		if firstBooking == nil {
			firstBooking = &booking
		}
		result.Bookings++
	}

	if jcdecaux, ok := suppliers["JCDecaux"]; ok {
		invoice := models.Invoice{
			ID:            uuid.New(),
			CampaignID:    campaign.ID,
			SupplierID:    &jcdecaux.ID,
			InvoiceNumber: "INV-2025-0001",
			Amount:        decimal.RequireFromString("85000.00"),
			Status:        enums.InvoiceStatusSent,
			IssuedAt:      campaign.StartDate.AddDate(0, 0, 14),
			DueAt:         campaign.StartDate.AddDate(0, 1, 14),
		}
		if err := tx.Create(&invoice).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, err))
		} else {
			result.Invoices++
		}
	}

	if firstBooking != nil {
		lat, lng := -26.1952, 28.0341
		captured := campaign.StartDate.Add(10 * 24 * time.Hour)
		document := models.Document{
			ID:         uuid.New(),
			CampaignID: &campaign.ID,
			BookingID:  &firstBooking.ID,
			Type:       enums.DocumentTypeProofOfFlighting,
			FileName:   "m1-gantry-flighting-2025-06-11.jpg",
			FileSize:   2048576,
			MimeType:   "image/jpeg",
			Status:     enums.DocumentStatusValidated,
			GPSLat:     &lat,
			GPSLng:     &lng,
			CapturedAt: &captured,
			UploadedBy: planner.ID,
		}
		if err := tx.Create(&document).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("document %s: %w", document.FileName, err))
		} else {
			result.Documents++
		}
	}

	return errs
}
