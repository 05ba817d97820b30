package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oohdesk/oohdesk-backend/api/routes"
	"github.com/oohdesk/oohdesk-backend/internal/auth"
	"github.com/oohdesk/oohdesk-backend/internal/bookings"
	"github.com/oohdesk/oohdesk-backend/internal/campaigns"
	"github.com/oohdesk/oohdesk-backend/internal/dashboard"
	"github.com/oohdesk/oohdesk-backend/internal/documents"
	"github.com/oohdesk/oohdesk-backend/internal/inventory"
	"github.com/oohdesk/oohdesk-backend/internal/invoices"
	"github.com/oohdesk/oohdesk-backend/internal/seed"
	"github.com/oohdesk/oohdesk-backend/internal/suppliers"
	"github.com/oohdesk/oohdesk-backend/internal/users"
	"github.com/oohdesk/oohdesk-backend/pkg/auth/session"
	"github.com/oohdesk/oohdesk-backend/pkg/config"
	"github.com/oohdesk/oohdesk-backend/pkg/db"
	"github.com/oohdesk/oohdesk-backend/pkg/logger"
	"github.com/oohdesk/oohdesk-backend/pkg/metrics"
	"github.com/oohdesk/oohdesk-backend/pkg/migrate"
	"github.com/oohdesk/oohdesk-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	conn := dbClient.DB()
	userRepo := users.NewRepository(conn)
	supplierRepo := suppliers.NewRepository(conn)
	campaignRepo := campaigns.NewRepository(conn)
	bookingRepo := bookings.NewRepository(conn)
	inventoryRepo := inventory.NewRepository(conn)
	documentRepo := documents.NewRepository(conn)
	invoiceRepo := invoices.NewRepository(conn)
	dashboardRepo := dashboard.NewRepository(conn)

	authService, err := auth.NewService(userRepo, sessionManager, cfg.JWT)
	if err != nil {
		fatal(logg, "failed to create auth service", err)
	}
	userService, err := users.NewService(userRepo, cfg.Password)
	if err != nil {
		fatal(logg, "failed to create user service", err)
	}
	supplierService, err := suppliers.NewService(supplierRepo)
	if err != nil {
		fatal(logg, "failed to create supplier service", err)
	}
	campaignService, err := campaigns.NewService(campaignRepo)
	if err != nil {
		fatal(logg, "failed to create campaign service", err)
	}
	bookingService, err := bookings.NewService(bookingRepo, campaignRepo, supplierRepo)
	if err != nil {
		fatal(logg, "failed to create booking service", err)
	}
	inventoryService, err := inventory.NewService(inventoryRepo, supplierRepo)
	if err != nil {
		fatal(logg, "failed to create inventory service", err)
	}
	documentService, err := documents.NewService(documentRepo, campaignRepo, bookingRepo)
	if err != nil {
		fatal(logg, "failed to create document service", err)
	}
	invoiceService, err := invoices.NewService(invoiceRepo, campaignRepo)
	if err != nil {
		fatal(logg, "failed to create invoice service", err)
	}
	dashboardService, err := dashboard.NewService(dashboardRepo)
	if err != nil {
		fatal(logg, "failed to create dashboard service", err)
	}
	seedService, err := seed.NewService(conn, cfg.Password, logg)
	if err != nil {
		fatal(logg, "failed to create seed service", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, httpMetrics, metricsHandler, routes.Services{
			Auth:      authService,
			Users:     userService,
			Suppliers: supplierService,
			Campaigns: campaignService,
			Bookings:  bookingService,
			Inventory: inventoryService,
			Documents: documentService,
			Invoices:  invoiceService,
			Dashboard: dashboardService,
			Seed:      seedService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func fatal(logg *logger.Logger, msg string, err error) {
	logg.Error(context.Background(), msg, err)
	os.Exit(1)
}
