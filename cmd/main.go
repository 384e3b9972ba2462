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

	attachJustificatifHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/attach_justificatif"
	cancelReservationHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/cancel_reservation"
	createPaymentHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/create_payment"
	createReservationHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/create_reservation"
	createSponsorshipHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/create_sponsorship"
	createUserHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/create_user"
	dashboardStatsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/dashboard_stats"
	decideSponsorshipHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/decide_sponsorship"
	deleteUserHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/delete_user"
	generateReportHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/generate_report"
	getAvailableSlotsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/get_available_slots"
	getDevisHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/get_devis"
	getReservationHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/get_reservation"
	getUserHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/get_user"
	getUserReservationsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/get_user_reservations"
	listEquipmentHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/list_equipment"
	listPaymentsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/list_payments"
	listReservationsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/list_rooms"
	listSponsorshipsHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/list_sponsorships"
	listUsersHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/list_users"
	loginHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/login"
	markInterviewHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/mark_interview"
	promoteReservationHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/promote_reservation"
	registerHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/register"
	updateUserHandler "github.com/foyer-bassa/FB-ReservationService/internal/api/handlers/update_user"
	"github.com/foyer-bassa/FB-ReservationService/internal/api/middleware"
	"github.com/foyer-bassa/FB-ReservationService/internal/config"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	devisRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/devis"
	equipmentRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/equipment"
	paymentRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/room"
	sponsorshipRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/sponsorship"
	userRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
	visioServiceClient "github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
	authService "github.com/foyer-bassa/FB-ReservationService/internal/service/auth"
	catalogService "github.com/foyer-bassa/FB-ReservationService/internal/service/catalog"
	dashboardService "github.com/foyer-bassa/FB-ReservationService/internal/service/dashboard"
	devisService "github.com/foyer-bassa/FB-ReservationService/internal/service/devis"
	paymentsService "github.com/foyer-bassa/FB-ReservationService/internal/service/payments"
	reservationsService "github.com/foyer-bassa/FB-ReservationService/internal/service/reservations"
	sponsorshipsService "github.com/foyer-bassa/FB-ReservationService/internal/service/sponsorships"
	usersService "github.com/foyer-bassa/FB-ReservationService/internal/service/users"
	createReservationUC "github.com/foyer-bassa/FB-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/foyer-bassa/FB-ReservationService/internal/usecase/get_available_slots"
	"github.com/foyer-bassa/FB-ReservationService/pkg/dbmetrics"
	"github.com/foyer-bassa/FB-ReservationService/pkg/logger"
	"github.com/foyer-bassa/FB-ReservationService/pkg/metrics"
	"github.com/foyer-bassa/FB-ReservationService/pkg/simpletxmanager"
	"github.com/foyer-bassa/FB-ReservationService/pkg/txmanager"
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

	log.Info("Starting FB-ReservationService...")
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

	visioClient := visioServiceClient.NewClient(
		cfg.Visio.Enabled,
		cfg.Visio.URL,
		time.Duration(cfg.Visio.Timeout)*time.Second,
		log,
	)
	log.Info("VisioService client initialized (url=%s, timeout=%ds, enabled=%t)",
		cfg.Visio.URL, cfg.Visio.Timeout, cfg.Visio.Enabled)

	publisher := events.NewPublisher(cfg.AMQP.Enabled, cfg.AMQP.URL, cfg.AMQP.Queue, log)
	if cfg.AMQP.Enabled {
		log.Info("AMQP publisher initialized (queue=%s)", cfg.AMQP.Queue)
	}

	// The transaction manager used by the create reservation use case.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	reservationRepository := reservationRepo.NewRepository(dbExecutor)
	roomRepository := roomRepo.NewRepository(dbExecutor)
	equipmentRepository := equipmentRepo.NewRepository(dbExecutor)
	userRepository := userRepo.NewRepository(dbExecutor)
	devisRepository := devisRepo.NewRepository(dbExecutor)
	paymentRepository := paymentRepo.NewRepository(dbExecutor)
	sponsorshipRepository := sponsorshipRepo.NewRepository(dbExecutor)

	tokenManager := authService.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)

	authSvc := authService.NewService(userRepository, tokenManager, cfg.Auth.BcryptCost, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, visioClient, publisher, log)
	usersSvc := usersService.NewService(userRepository, cfg.Auth.BcryptCost, log)
	catalogSvc := catalogService.NewService(roomRepository, equipmentRepository, log)
	devisSvc := devisService.NewService(devisRepository, reservationRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, reservationRepository, log)
	sponsorshipsSvc := sponsorshipsService.NewService(sponsorshipRepository, log)
	dashboardSvc := dashboardService.NewService(
		reservationRepository,
		paymentRepository,
		userRepository,
		roomRepository,
		len(cfg.Slots),
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		userRepository,
		equipmentRepository,
		devisRepository,
		visioClient,
		publisher,
		txMgr,
		cfg.SlotCatalog(),
		cfg.DomainPricing(),
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		roomRepository,
		cfg.SlotCatalog(),
		log,
	)

	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	promoteReservation := promoteReservationHandler.NewHandler(reservationsSvc, log)
	markInterview := markInterviewHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getDevis := getDevisHandler.NewHandler(devisSvc, log)
	createPayment := createPaymentHandler.NewHandler(paymentsSvc, log)
	attachJustificatif := attachJustificatifHandler.NewHandler(paymentsSvc, log)
	listPayments := listPaymentsHandler.NewHandler(paymentsSvc, log)
	createSponsorship := createSponsorshipHandler.NewHandler(sponsorshipsSvc, log)
	decideSponsorship := decideSponsorshipHandler.NewHandler(sponsorshipsSvc, log)
	listSponsorships := listSponsorshipsHandler.NewHandler(sponsorshipsSvc, log)
	createUser := createUserHandler.NewHandler(usersSvc, log)
	getUser := getUserHandler.NewHandler(usersSvc, log)
	updateUser := updateUserHandler.NewHandler(usersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(usersSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	listRooms := listRoomsHandler.NewHandler(catalogSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(catalogSvc, log)
	dashboardStats := dashboardStatsHandler.NewHandler(dashboardSvc, log)
	generateReport := generateReportHandler.NewHandler(dashboardSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	// Reservations.
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/promote", promoteReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/interview", markInterview.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/devis", getDevis.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/payments", listPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Payments.
	protected.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{paymentId}/justificatif", attachJustificatif.Handle).Methods(http.MethodPatch)

	// Sponsorships.
	protected.HandleFunc("/sponsorships", createSponsorship.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sponsorships", listSponsorships.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sponsorships/{sponsorshipId}/status", decideSponsorship.Handle).Methods(http.MethodPatch)

	// Users administration.
	protected.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// Dashboard.
	protected.HandleFunc("/dashboard/stats", dashboardStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/reports", generateReport.Handle).Methods(http.MethodPost)

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
