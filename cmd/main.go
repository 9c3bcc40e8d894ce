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

	cancelReservationHandler "github.com/urbandepot/parking-service/internal/api/handlers/cancel_reservation"
	checkConflictHandler "github.com/urbandepot/parking-service/internal/api/handlers/check_conflict"
	createPaymentOrderHandler "github.com/urbandepot/parking-service/internal/api/handlers/create_payment_order"
	createReservationHandler "github.com/urbandepot/parking-service/internal/api/handlers/create_reservation"
	deletePlaceHandler "github.com/urbandepot/parking-service/internal/api/handlers/delete_place"
	getFreeSlotsHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_free_slots"
	getGroupedReservationsHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_grouped_reservations"
	getOwnerPlacesHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_owner_places"
	getPlaceHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_place"
	getPlaceReservationsHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_place_reservations"
	getReservationHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_reservation"
	getTariffHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_tariff"
	getUserReservationsHandler "github.com/urbandepot/parking-service/internal/api/handlers/get_user_reservations"
	healthHandler "github.com/urbandepot/parking-service/internal/api/handlers/health"
	listAllPlacesHandler "github.com/urbandepot/parking-service/internal/api/handlers/list_all_places"
	listPlacesHandler "github.com/urbandepot/parking-service/internal/api/handlers/list_places"
	registerPlaceHandler "github.com/urbandepot/parking-service/internal/api/handlers/register_place"
	upsertTariffHandler "github.com/urbandepot/parking-service/internal/api/handlers/upsert_tariff"
	verifyPaymentHandler "github.com/urbandepot/parking-service/internal/api/handlers/verify_payment"
	verifyPlaceHandler "github.com/urbandepot/parking-service/internal/api/handlers/verify_place"
	"github.com/urbandepot/parking-service/internal/api/middleware"
	"github.com/urbandepot/parking-service/internal/config"
	"github.com/urbandepot/parking-service/internal/infra/events"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	reservationRepo "github.com/urbandepot/parking-service/internal/infra/storage/reservation"
	tariffRepo "github.com/urbandepot/parking-service/internal/infra/storage/tariff"
	"github.com/urbandepot/parking-service/internal/integrations/razorpay"
	paymentsService "github.com/urbandepot/parking-service/internal/service/payments"
	placesService "github.com/urbandepot/parking-service/internal/service/places"
	reservationsService "github.com/urbandepot/parking-service/internal/service/reservations"
	tariffsService "github.com/urbandepot/parking-service/internal/service/tariffs"
	checkConflictUC "github.com/urbandepot/parking-service/internal/usecase/check_conflict"
	createReservationUC "github.com/urbandepot/parking-service/internal/usecase/create_reservation"
	getFreeSlotsUC "github.com/urbandepot/parking-service/internal/usecase/get_free_slots"
	"github.com/urbandepot/parking-service/pkg/dbmetrics"
	"github.com/urbandepot/parking-service/pkg/logger"
	"github.com/urbandepot/parking-service/pkg/metrics"
	"github.com/urbandepot/parking-service/pkg/simpletxmanager"
	"github.com/urbandepot/parking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting parking-service...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Репозитории и менеджер транзакций (с метриками или без)
	var (
		placeRepository       *placeRepo.Repository
		reservationRepository *reservationRepo.Repository
		tariffRepository      *tariffRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		placeRepository = placeRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tariffRepository = tariffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		placeRepository = placeRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		tariffRepository = tariffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Публикация доменных событий
	var publisher interface {
		Publish(ctx context.Context, event events.Event) error
		Close() error
	}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(
			cfg.Kafka.Brokers,
			cfg.Kafka.TopicPrefix,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
			log,
		)
		log.Info("Kafka publisher initialized (brokers=%v, prefix=%s)", cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix)
	} else {
		publisher = events.NopPublisher{}
		log.Warn("Kafka brokers are not configured, domain events are discarded")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Платежный шлюз
	gatewayClient := razorpay.NewClient(
		cfg.Razorpay.URL,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		time.Duration(cfg.Razorpay.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)", cfg.Razorpay.URL, cfg.Razorpay.Timeout)

	// Инициализируем сервисы
	placeSvc := placesService.NewService(placeRepository, reservationRepository, publisher, location, log)
	reservationSvc := reservationsService.NewService(reservationRepository, placeRepository, publisher, location, log)
	tariffSvc := tariffsService.NewService(tariffRepository, placeRepository, log)
	paymentSvc := paymentsService.NewService(
		reservationRepository,
		gatewayClient,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.Currency,
		log,
	)

	// Инициализируем use cases
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(placeRepository, reservationRepository, location, log)
	checkConflictUseCase := checkConflictUC.NewUseCase(
		placeRepository,
		reservationRepository,
		metricsCollector,
		location,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		placeRepository,
		reservationRepository,
		tariffRepository,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, location, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getPlaceReservations := getPlaceReservationsHandler.NewHandler(reservationSvc, location, log)
	getGroupedReservations := getGroupedReservationsHandler.NewHandler(reservationSvc, log)
	registerPlace := registerPlaceHandler.NewHandler(placeSvc, log)
	listPlaces := listPlacesHandler.NewHandler(placeSvc, log)
	getPlace := getPlaceHandler.NewHandler(placeSvc, log)
	getOwnerPlaces := getOwnerPlacesHandler.NewHandler(placeSvc, log)
	deletePlace := deletePlaceHandler.NewHandler(placeSvc, log)
	listAllPlaces := listAllPlacesHandler.NewHandler(placeSvc, log)
	verifyPlace := verifyPlaceHandler.NewHandler(placeSvc, log)
	getTariff := getTariffHandler.NewHandler(tariffSvc, log)
	upsertTariff := upsertTariffHandler.NewHandler(tariffSvc, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(paymentSvc, log)
	verifyPayment := verifyPaymentHandler.NewHandler(paymentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ограничение частоты запросов: Redis, если задан, иначе локальный лимитер
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		window := time.Duration(cfg.RateLimit.Window) * time.Second
		if cfg.Redis.Addr != "" {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				log.Warn("Redis is unreachable at %s: %v", cfg.Redis.Addr, err)
			}
			limiter := middleware.NewRedisRateLimiter(
				redisClient,
				cfg.RateLimit.Requests,
				window,
				cfg.RateLimit.Prefix,
				cfg.RateLimit.FailOpen,
				log,
			)
			api.Use(limiter.Middleware)
			log.Info("Redis rate limiter enabled (addr=%s, limit=%d per %s)", cfg.Redis.Addr, cfg.RateLimit.Requests, window)
		} else {
			api.Use(middleware.NewLocalRateLimiter(cfg.RateLimit.Requests, window).Middleware)
			log.Info("Local rate limiter enabled (limit=%d per %s)", cfg.RateLimit.Requests, window)
		}
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/places", listPlaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/places/{placeId}", getPlace.Handle).Methods(http.MethodGet)
	api.HandleFunc("/places/{placeId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/places/{placeId}/conflicts", checkConflict.Handle).Methods(http.MethodPost)
	api.HandleFunc("/places/{placeId}/tariff", getTariff.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Admin))

	// --- Площадки ---
	protected.HandleFunc("/places", registerPlace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/places/{placeId}", deletePlace.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/places/{placeId}/reservations", getPlaceReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{email}/places", getOwnerPlaces.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{email}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/payments/orders", createPaymentOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/verify", verifyPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/places", listAllPlaces.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/places/{placeId}/verify", verifyPlace.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/grouped", getGroupedReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/tariffs", upsertTariff.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
