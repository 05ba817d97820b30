package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oohdesk/oohdesk-backend/api/controllers"
	"github.com/oohdesk/oohdesk-backend/api/middleware"
	authsvc "github.com/oohdesk/oohdesk-backend/internal/auth"
	bookingsvc "github.com/oohdesk/oohdesk-backend/internal/bookings"
	campaignsvc "github.com/oohdesk/oohdesk-backend/internal/campaigns"
	dashboardsvc "github.com/oohdesk/oohdesk-backend/internal/dashboard"
	documentsvc "github.com/oohdesk/oohdesk-backend/internal/documents"
	inventorysvc "github.com/oohdesk/oohdesk-backend/internal/inventory"
	invoicesvc "github.com/oohdesk/oohdesk-backend/internal/invoices"
	seedsvc "github.com/oohdesk/oohdesk-backend/internal/seed"
	suppliersvc "github.com/oohdesk/oohdesk-backend/internal/suppliers"
	usersvc "github.com/oohdesk/oohdesk-backend/internal/users"
	"github.com/oohdesk/oohdesk-backend/pkg/auth/session"
	"github.com/oohdesk/oohdesk-backend/pkg/config"
	"github.com/oohdesk/oohdesk-backend/pkg/db"
	"github.com/oohdesk/oohdesk-backend/pkg/enums"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/metrics"
	"github.com/oohdesk/oohdesk-backend/pkg/redis"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth      authsvc.Service
	Users     usersvc.Service
	Suppliers suppliersvc.Service
	Campaigns campaignsvc.Service
	Bookings  bookingsvc.Service
	Inventory inventorysvc.Service
	Documents documentsvc.Service
	Invoices  invoicesvc.Service
	Dashboard dashboardsvc.Service
	Seed      seedsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database db.Pinger,
	cache redis.Pinger,
	sessions session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, database, cache))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(svcs.Users, logg))
			r.Get("/{id}", controllers.GetUser(svcs.Users, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCapability(enums.Role.CanManageUsers, logg))
				r.Post("/", controllers.CreateUser(svcs.Users, logg))
				r.Patch("/{id}", controllers.UpdateUser(svcs.Users, logg))
				r.Delete("/{id}", controllers.DeleteUser(svcs.Users, logg))
			})
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.ListSuppliers(svcs.Suppliers, logg))
			r.Get("/{id}", controllers.GetSupplier(svcs.Suppliers, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCapability(enums.Role.CanManageSuppliers, logg))
				r.Post("/", controllers.CreateSupplier(svcs.Suppliers, logg))
				r.Patch("/{id}", controllers.UpdateSupplier(svcs.Suppliers, logg))
				r.Delete("/{id}", controllers.DeleteSupplier(svcs.Suppliers, logg))
			})
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", controllers.CreateCampaign(svcs.Campaigns, logg))
			r.Get("/", controllers.ListCampaigns(svcs.Campaigns, logg))
			r.Get("/{id}", controllers.GetCampaign(svcs.Campaigns, logg))
			r.Patch("/{id}", controllers.UpdateCampaign(svcs.Campaigns, logg))
			r.Delete("/{id}", controllers.DeleteCampaign(svcs.Campaigns, logg))
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", controllers.CreateBooking(svcs.Bookings, logg))
			r.Get("/", controllers.ListBookings(svcs.Bookings, logg))
			r.Get("/{id}", controllers.GetBooking(svcs.Bookings, logg))
			r.Patch("/{id}", controllers.UpdateBooking(svcs.Bookings, logg))
			r.Delete("/{id}", controllers.DeleteBooking(svcs.Bookings, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", controllers.CreateInventoryItem(svcs.Inventory, logg))
			r.Get("/", controllers.ListInventory(svcs.Inventory, logg))
			r.Get("/{id}", controllers.GetInventoryItem(svcs.Inventory, logg))
			r.Patch("/{id}", controllers.UpdateInventoryItem(svcs.Inventory, logg))
			r.Delete("/{id}", controllers.DeleteInventoryItem(svcs.Inventory, logg))
		})

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", controllers.CreateDocument(svcs.Documents, logg))
			r.Get("/", controllers.ListDocuments(svcs.Documents, logg))
			r.Get("/{id}", controllers.GetDocument(svcs.Documents, logg))
			r.Patch("/{id}", controllers.UpdateDocument(svcs.Documents, logg))
			r.Delete("/{id}", controllers.DeleteDocument(svcs.Documents, logg))
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", controllers.CreateInvoice(svcs.Invoices, logg))
			r.Get("/", controllers.ListInvoices(svcs.Invoices, logg))
			r.Get("/{id}", controllers.GetInvoice(svcs.Invoices, logg))
			r.Patch("/{id}", controllers.UpdateInvoice(svcs.Invoices, logg))
			r.Delete("/{id}", controllers.DeleteInvoice(svcs.Invoices, logg))
		})

		r.Get("/dashboard/stats", controllers.DashboardStats(svcs.Dashboard, logg))
	})

	// The fixture loader is a dev convenience and never ships to prod.
	if !cfg.App.IsProd() && cfg.FeatureFlags.AllowSeed {
		r.Post("/api/seed", controllers.RunSeed(svcs.Seed, logg))
	}

	return r
}
