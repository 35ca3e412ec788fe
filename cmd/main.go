package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/check_availability"
	createBookingHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/create_booking"
	getBookingHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/get_booking"
	getRulesHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/get_rules"
	listAvailableDatesHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/list_available_dates"
	listBookingsHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/list_bookings"
	listVehiclesHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/list_vehicles"
	updateCapacityRuleHandler "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/handlers/update_capacity_rule"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/api/middleware"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/config"
	bookingRepo "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/infra/storage/booking"
	pricingRepo "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/infra/storage/pricing"
	rulesRepo "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/infra/storage/rules"
	vehicleRepo "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/infra/storage/vehicle"
	crmServiceClient "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/integrations/crmservice"
	bookingsService "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/bookings"
	rulesService "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/service/rules"
	checkAvailabilityUC "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/check_availability"
	createBookingUC "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/create_booking"
	listAvailableDatesUC "github.com/WallaWallaTravel/walla-walla-travel-sub011/internal/usecase/list_available_dates"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/dbmetrics"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/logger"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/metrics"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/simpletxmanager"
	"github.com/WallaWallaTravel/walla-walla-travel-sub011/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting availability engine...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	crmClient := crmServiceClient.NewClient(
		cfg.CRMService.URL,
		time.Duration(cfg.CRMService.Timeout)*time.Second,
		log,
	)
	log.Info("CRM client initialized (url=%s timeout=%ds)", cfg.CRMService.URL, cfg.CRMService.Timeout)

	var (
		bookingRepository *bookingRepo.Repository
		rulesRepository   *rulesRepo.Repository
		pricingRepository *pricingRepo.Repository
		vehicleRepository *vehicleRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		rulesRepository = rulesRepo.NewRepository(wrappedDB)
		pricingRepository = pricingRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		rulesRepository = rulesRepo.NewRepository(db)
		pricingRepository = pricingRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	rulesSvc := rulesService.NewService(rulesRepository, log)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		rulesRepository,
		pricingRepository,
		vehicleRepository,
		cfg.Booking.MaxPartySize,
		log,
	)
	listAvailableDatesUseCase := listAvailableDatesUC.NewUseCase(
		bookingRepository,
		rulesRepository,
		vehicleRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		rulesRepository,
		pricingRepository,
		vehicleRepository,
		crmClient,
		txMgr,
		cfg.Booking.MaxPartySize,
		log,
	)

	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	listAvailableDates := listAvailableDatesHandler.NewHandler(listAvailableDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getRules := getRulesHandler.NewHandler(rulesSvc, log)
	updateCapacityRule := updateCapacityRuleHandler.NewHandler(rulesSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleRepository, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/dates", listAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)

	// Protected routes (require X-Staff-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/availability-rules", getRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/availability-rules/capacity", updateCapacityRule.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
