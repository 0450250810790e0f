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
	"github.com/redis/go-redis/v9"

	assignGroomerHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/assign_groomer"
	bookingDraftsHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/booking_drafts"
	cancelAbsenceHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/cancel_absence"
	cancelBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/confirm_booking"
	createAbsenceHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/create_absence"
	createBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/create_booking"
	getAbsencesHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_absences"
	getAdminBookingsHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_booking"
	getBookingHistoryHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_booking_history"
	getCapacityHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_capacity"
	getCustomerBookingsHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_customer_bookings"
	getFeaturedGalleryHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_featured_gallery"
	getGroomersHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_groomers"
	getPackagesHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/get_packages"
	manageBlackoutsHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/manage_blackouts"
	manageWarningsHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/manage_warnings"
	markNoShowHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/mark_no_show"
	rescheduleBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/reschedule_booking"
	reviewAbsenceHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/review_absence"
	setFeaturedHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/set_featured"
	setReviewHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/set_review"
	updateBookingHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/update_booking"
	uploadBookingMediaHandler "github.com/bestbuddies/grooming-service/internal/api/handlers/upload_booking_media"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/config"
	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/internal/infra/draftstore"
	absenceRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/absence"
	blackoutRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/blackout"
	bookingRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/booking"
	catalogRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/catalog"
	groomerRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/groomer"
	historyRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/history"
	userRepo "github.com/bestbuddies/grooming-service/internal/infra/storage/user"
	"github.com/bestbuddies/grooming-service/internal/integrations/mediastore"
	"github.com/bestbuddies/grooming-service/internal/pricing"
	absencesService "github.com/bestbuddies/grooming-service/internal/service/absences"
	bookingsService "github.com/bestbuddies/grooming-service/internal/service/bookings"
	customersService "github.com/bestbuddies/grooming-service/internal/service/customers"
	groomersService "github.com/bestbuddies/grooming-service/internal/service/groomers"
	blockDayUC "github.com/bestbuddies/grooming-service/internal/usecase/block_day"
	createBookingUC "github.com/bestbuddies/grooming-service/internal/usecase/create_booking"
	getDayCapacityUC "github.com/bestbuddies/grooming-service/internal/usecase/get_day_capacity"
	getSlotAvailabilityUC "github.com/bestbuddies/grooming-service/internal/usecase/get_slot_availability"
	markNoShowUC "github.com/bestbuddies/grooming-service/internal/usecase/mark_no_show"
	rescheduleBookingUC "github.com/bestbuddies/grooming-service/internal/usecase/reschedule_booking"
	unblockDayUC "github.com/bestbuddies/grooming-service/internal/usecase/unblock_day"
	"github.com/bestbuddies/grooming-service/pkg/dbmetrics"
	"github.com/bestbuddies/grooming-service/pkg/logger"
	"github.com/bestbuddies/grooming-service/pkg/metrics"
	"github.com/bestbuddies/grooming-service/pkg/simpletxmanager"
	"github.com/bestbuddies/grooming-service/pkg/txmanager"
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

	log.Info("Starting grooming-service...")
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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	mediaClient := mediastore.NewClient(
		cfg.MediaStore.URL,
		time.Duration(cfg.MediaStore.Timeout)*time.Second,
		log,
	)
	log.Info("Media store client initialized (url=%s, timeout=%ds)", cfg.MediaStore.URL, cfg.MediaStore.Timeout)

	var (
		bookingRepository  *bookingRepo.Repository
		userRepository     *userRepo.Repository
		groomerRepository  *groomerRepo.Repository
		absenceRepository  *absenceRepo.Repository
		blackoutRepository *blackoutRepo.Repository
		historyRepository  *historyRepo.Repository
		catalogRepository  *catalogRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		groomerRepository = groomerRepo.NewRepository(wrappedDB)
		absenceRepository = absenceRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		historyRepository = historyRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		groomerRepository = groomerRepo.NewRepository(db)
		absenceRepository = absenceRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		historyRepository = historyRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Seed the roster and the price catalog on first start
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := groomerRepository.EnsureDefaults(seedCtx, domain.DefaultRoster); err != nil {
		seedCancel()
		log.Fatal("Failed to seed groomer roster: %v", err)
	}
	if err := catalogRepository.EnsureDefaults(seedCtx, pricing.DefaultPackages); err != nil {
		seedCancel()
		log.Fatal("Failed to seed package catalog: %v", err)
	}
	seedCancel()
	log.Info("Roster and catalog defaults ensured")

	draftStore := draftstore.NewStore(redisClient, time.Duration(cfg.Drafts.TTL)*time.Second)

	// Services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		historyRepository,
		groomerRepository,
		catalogRepository,
		txMgr,
		bookingsService.RealTimeProvider{},
		log,
	)
	customerSvc := customersService.NewService(
		userRepository,
		txMgr,
		customersService.RealTimeProvider{},
		log,
	)
	absenceSvc := absencesService.NewService(
		absenceRepository,
		txMgr,
		absencesService.RealTimeProvider{},
		log,
	)
	groomerSvc := groomersService.NewService(
		groomerRepository,
		userRepository,
		txMgr,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		historyRepository,
		userRepository,
		groomerRepository,
		catalogRepository,
		absenceRepository,
		blackoutRepository,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		historyRepository,
		blackoutRepository,
		txMgr,
		log,
	)
	markNoShowUseCase := markNoShowUC.NewUseCase(
		bookingRepository,
		historyRepository,
		customerSvc,
		txMgr,
		log,
	)
	blockDayUseCase := blockDayUC.NewUseCase(
		bookingRepository,
		historyRepository,
		blackoutRepository,
		txMgr,
		log,
	)
	unblockDayUseCase := unblockDayUC.NewUseCase(blackoutRepository, log)
	getDayCapacityUseCase := getDayCapacityUC.NewUseCase(
		bookingRepository,
		groomerRepository,
		absenceRepository,
		blackoutRepository,
		log,
	)
	getSlotAvailabilityUseCase := getSlotAvailabilityUC.NewUseCase(
		bookingRepository,
		groomerRepository,
		absenceRepository,
		blackoutRepository,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	assignGroomer := assignGroomerHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	markNoShow := markNoShowHandler.NewHandler(markNoShowUseCase, log)
	getBookingHistory := getBookingHistoryHandler.NewHandler(bookingSvc, log)
	uploadBookingMedia := uploadBookingMediaHandler.NewHandler(mediaClient, bookingSvc, log)
	setFeatured := setFeaturedHandler.NewHandler(bookingSvc, log)
	setReview := setReviewHandler.NewHandler(bookingSvc, log)
	bookingDrafts := bookingDraftsHandler.NewHandler(draftStore, log)
	getCapacity := getCapacityHandler.NewHandler(getDayCapacityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getSlotAvailabilityUseCase, log)
	getPackages := getPackagesHandler.NewHandler(catalogRepository, log)
	getFeaturedGallery := getFeaturedGalleryHandler.NewHandler(bookingSvc, log)
	createAbsence := createAbsenceHandler.NewHandler(absenceSvc, groomerSvc, log)
	getAbsences := getAbsencesHandler.NewHandler(absenceSvc, log)
	reviewAbsence := reviewAbsenceHandler.NewHandler(absenceSvc, log)
	cancelAbsence := cancelAbsenceHandler.NewHandler(absenceSvc, log)
	getGroomers := getGroomersHandler.NewHandler(groomerSvc, log)
	manageWarnings := manageWarningsHandler.NewHandler(customerSvc, log)
	manageBlackouts := manageBlackoutsHandler.NewHandler(blockDayUseCase, unblockDayUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/capacity", getCapacity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/capacity/{date}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages", getPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/gallery/featured", getFeaturedGallery.Handle).Methods(http.MethodGet)
	api.HandleFunc("/groomers", getGroomers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Booking wizard drafts; registered before /bookings/{bookingId} so
	// "draft" never matches as an ID
	protected.HandleFunc("/bookings/draft", bookingDrafts.HandleSave).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/draft", bookingDrafts.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/draft", bookingDrafts.HandleDelete).Methods(http.MethodDelete)

	// Bookings
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/history", getBookingHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/review", setReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Staff routes (admin or roster groomer)
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/absences", createAbsence.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/absences/mine", getAbsences.HandleMine).Methods(http.MethodGet)
	staff.HandleFunc("/absences/{absenceId}/cancel", cancelAbsence.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{bookingId}/media", uploadBookingMedia.Handle).Methods(http.MethodPost)

	// Admin routes
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/groomer", assignGroomer.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/no-show", markNoShow.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/featured", setFeatured.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/blackouts", manageBlackouts.HandleBlock).Methods(http.MethodPost)
	admin.HandleFunc("/blackouts/{date}", manageBlackouts.HandleUnblock).Methods(http.MethodDelete)
	admin.HandleFunc("/absences", getAbsences.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/absences/{absenceId}/review", reviewAbsence.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/customers/watchlist", manageWarnings.HandleWatchlist).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{customerId}/warnings", manageWarnings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{customerId}/warnings", manageWarnings.HandleWarn).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{customerId}/ban", manageWarnings.HandleBan).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{customerId}/ban/lift", manageWarnings.HandleLiftBan).Methods(http.MethodPost)

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
