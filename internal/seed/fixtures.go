package seed

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/oohdesk/oohdesk-backend/pkg/db/models"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
)

// AdminUsername is the sentinel account: when it exists the loader assumes
// the fixtures are already in place and does nothing.
const AdminUsername = "admin"

type userFixture struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     enums.Role
	Supplier string
}

var userFixtures = []userFixture{
	{Username: AdminUsername, Password: "admin123", FullName: "Nomsa Khumalo", Email: "admin@oohdesk.gov.za", Role: enums.RoleDepartmentAdmin},
	{Username: "planner", Password: "planner123", FullName: "Pieter van Wyk", Email: "planner@oohdesk.gov.za", Role: enums.RoleCampaignPlanner},
	{Username: "finance", Password: "finance123", FullName: "Lerato Mokoena", Email: "finance@oohdesk.gov.za", Role: enums.RoleFinanceOfficer},
	{Username: "auditor", Password: "auditor123", FullName: "Johan Steyn", Email: "auditor@oohdesk.gov.za", Role: enums.RoleAuditor},
	{Username: "supplier", Password: "supplier123", FullName: "Thandi Nkosi", Email: "thandi@jcdecaux.example", Role: enums.RoleSupplierAdmin, Supplier: "JCDecaux"},
	{Username: "screens", Password: "screens123", FullName: "Sipho Dlamini", Email: "sipho@primedia.example", Role: enums.RoleSupplierUser, Supplier: "Primedia"},
}

var supplierFixtures = []models.Supplier{
	{
		Name:          "JCDecaux",
		ContactPerson: "Thandi Nkosi",
		Email:         "bookings@jcdecaux.example",
		Phone:         "+27 11 555 0101",
		Address:       "12 Empire Rd, Parktown, Johannesburg",
		RegionsServed: pq.StringArray{"Gauteng", "Western Cape", "KwaZulu-Natal"},
		IsActive:      true,
	},
	{
		Name:          "Primedia",
		ContactPerson: "Sipho Dlamini",
		Email:         "sales@primedia.example",
		Phone:         "+27 11 555 0202",
		Address:       "5 Rivonia Rd, Sandton",
		RegionsServed: pq.StringArray{"Gauteng", "Eastern Cape"},
		IsActive:      true,
	},
}

type inventoryFixture struct {
	Supplier    string
	ScreenName  string
	ScreenType  enums.ScreenType
	Location    string
	Region      string
	DailyRate   string
	WeeklyRate  string
	MonthlyRate string
	Illuminated bool
	Digital     bool
}

var inventoryFixtures = []inventoryFixture{
	{Supplier: "JCDecaux", ScreenName: "M1 South Gantry", ScreenType: enums.ScreenTypeBillboard, Location: "M1 Highway, Johannesburg", Region: "Gauteng", DailyRate: "1500.00", WeeklyRate: "9000.00", MonthlyRate: "30000.00", Illuminated: true},
	{Supplier: "JCDecaux", ScreenName: "Sandton CBD LED Wall", ScreenType: enums.ScreenTypeLEDScreen, Location: "Sandton Drive, Sandton", Region: "Gauteng", DailyRate: "4500.00", WeeklyRate: "27000.00", MonthlyRate: "90000.00", Illuminated: true, Digital: true},
	{Supplier: "JCDecaux", ScreenName: "Cape Town Station Concourse", ScreenType: enums.ScreenTypeStreetFurniture, Location: "Cape Town Station, Cape Town", Region: "Western Cape", DailyRate: "800.00", WeeklyRate: "4800.00", MonthlyRate: "16000.00"},
	{Supplier: "JCDecaux", ScreenName: "Umhlanga Ridge Digital", ScreenType: enums.ScreenTypeDigitalBillboard, Location: "Umhlanga Rocks Dr, Durban", Region: "KwaZulu-Natal", DailyRate: "2500.00", WeeklyRate: "15000.00", MonthlyRate: "50000.00", Illuminated: true, Digital: true},
	{Supplier: "Primedia", ScreenName: "N3 Eastbound Super Sign", ScreenType: enums.ScreenTypeBillboard, Location: "N3 Highway, Germiston", Region: "Gauteng", DailyRate: "1800.00", WeeklyRate: "10800.00", MonthlyRate: "36000.00", Illuminated: true},
	{Supplier: "Primedia", ScreenName: "Rosebank Mall Entrance", ScreenType: enums.ScreenTypeLEDScreen, Location: "Oxford Rd, Rosebank", Region: "Gauteng", DailyRate: "3200.00", WeeklyRate: "19200.00", MonthlyRate: "64000.00", Digital: true},
	{Supplier: "Primedia", ScreenName: "Gqeberha Beachfront Panel", ScreenType: enums.ScreenTypeBillboard, Location: "Marine Dr, Gqeberha", Region: "Eastern Cape", DailyRate: "950.00", WeeklyRate: "5700.00", MonthlyRate: "19000.00"},
	{Supplier: "Primedia", ScreenName: "Taxi Rank Transit Wrap", ScreenType: enums.ScreenTypeTransit, Location: "Bree Street Taxi Rank, Johannesburg", Region: "Gauteng", DailyRate: "600.00", WeeklyRate: "3600.00", MonthlyRate: "12000.00"},
}

func campaignFixture(createdBy models.User) models.Campaign {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return models.Campaign{
		Name:        "Road Safety Winter Drive",
		Description: "Provincial winter road safety awareness campaign",
		Status:      enums.CampaignStatusInProgress,
		Budget:      decimal.RequireFromString("500000.00"),
		StartDate:   start,
		EndDate:     start.AddDate(0, 3, 0),
		Region:      "Gauteng",
		TargetReach: 2500000,
		CreatedBy:   createdBy.ID,
	}
}

type bookingFixture struct {
	Supplier        string
	SiteDescription string
	Location        string
	MediaType       enums.MediaType
	Cost            string
	Status          enums.BookingStatus
}

var bookingFixtures = []bookingFixture{
	{Supplier: "JCDecaux", SiteDescription: "M1 South Gantry, northbound face", Location: "M1 Highway, Johannesburg", MediaType: enums.MediaTypeBillboard, Cost: "85000.00", Status: enums.BookingStatusApproved},
	{Supplier: "Primedia", SiteDescription: "N3 Eastbound Super Sign", Location: "N3 Highway, Germiston", MediaType: enums.MediaTypeBillboard, Cost: "92000.00", Status: enums.BookingStatusPending},
}
