package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	createBookingHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/create_booking"
	createTripHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/create_trip"
	deleteBookingHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/delete_booking"
	deleteCustomerHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/delete_customer"
	deleteTripHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/delete_trip"
	editBookingHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/edit_booking"
	getCalendarHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/get_calendar"
	getTripHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/get_trip"
	listBookingsHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/list_bookings"
	listSelectableTripsHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/list_selectable_trips"
	rebuildCalendarHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/rebuild_calendar"
	updateTripHandler "github.com/m04kA/SMC-TransportService/internal/api/handlers/update_trip"
	"github.com/m04kA/SMC-TransportService/internal/api/middleware"
	"github.com/m04kA/SMC-TransportService/internal/config"
	"github.com/m04kA/SMC-TransportService/internal/infra/docstore"
	bookingsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/bookings"
	customersRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/customers"
	seasonsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/seasons"
	tripsRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trips"
	trucksRepo "github.com/m04kA/SMC-TransportService/internal/infra/storage/trucks"
	bookingsService "github.com/m04kA/SMC-TransportService/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-TransportService/internal/service/calendar"
	tripsService "github.com/m04kA/SMC-TransportService/internal/service/trips"
	createBookingUC "github.com/m04kA/SMC-TransportService/internal/usecase/create_booking"
	deleteBookingUC "github.com/m04kA/SMC-TransportService/internal/usecase/delete_booking"
	deleteCustomerUC "github.com/m04kA/SMC-TransportService/internal/usecase/delete_customer"
	deleteTripUC "github.com/m04kA/SMC-TransportService/internal/usecase/delete_trip"
	editBookingUC "github.com/m04kA/SMC-TransportService/internal/usecase/edit_booking"
	"github.com/m04kA/SMC-TransportService/pkg/logger"
	"github.com/m04kA/SMC-TransportService/pkg/metrics"
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

	log.Info("Starting SMC-TransportService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к MongoDB (основной источник)
	connectCtx, cancelConnect := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Mongo.ConnectTimeout)*time.Second,
	)
	defer cancelConnect()

	mongoClient, err := mongo.Connect(connectCtx, mongooptions.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	if err := mongoClient.Ping(connectCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB: %v", err)
	}
	log.Info("Successfully connected to MongoDB (db=%s)", cfg.Mongo.Database)

	// Подключаемся к Redis (кеш для fallback-чтений)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(connectCtx).Err(); err != nil {
		// Кеш не обязателен для старта: без него остаются только живые чтения
		log.Warn("Failed to ping Redis, cache fallback degraded: %v", err)
	} else {
		log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Addr)
	}

	// Инициализируем document store
	cache := docstore.NewCache(rdb, time.Duration(cfg.Redis.TTL)*time.Second)
	var recorder docstore.Recorder
	if cfg.Metrics.Enabled {
		recorder = metricsCollector
	}
	store := docstore.NewClient(
		mongoClient.Database(cfg.Mongo.Database),
		cache,
		recorder,
		log,
		time.Duration(cfg.Mongo.QueryTimeout)*time.Second,
	)

	// Инициализируем репозитории
	tripRepository := tripsRepo.NewRepository(store)
	bookingRepository := bookingsRepo.NewRepository(store)
	customerRepository := customersRepo.NewRepository(store)
	truckRepository := trucksRepo.NewRepository(store)
	seasonRepository := seasonsRepo.NewRepository(store)

	// Инициализируем календарный индекс и наполняем его из сторов
	calendarIndex := calendarService.NewIndex(tripRepository, bookingRepository, seasonRepository, log)
	if err := calendarIndex.Rebuild(context.Background()); err != nil {
		// Индекс производный: сервис работоспособен и c пустым календарем,
		// перестроение можно запустить повторно через API
		log.Warn("Failed to rebuild calendar index on startup: %v", err)
	} else {
		log.Info("Calendar index rebuilt on startup")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, seasonRepository, log)
	tripSvc := tripsService.NewService(
		tripRepository,
		truckRepository,
		seasonRepository,
		calendarIndex,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tripRepository,
		customerRepository,
		seasonRepository,
		calendarIndex,
		cfg.Booking.PaidThreshold,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		tripRepository,
		calendarIndex,
		cfg.Booking.PaidThreshold,
		log,
	)
	deleteBookingUseCase := deleteBookingUC.NewUseCase(
		bookingRepository,
		tripRepository,
		calendarIndex,
		cfg.Booking.PaidThreshold,
		log,
	)
	deleteTripUseCase := deleteTripUC.NewUseCase(
		tripRepository,
		bookingRepository,
		calendarIndex,
		log,
	)
	deleteCustomerUseCase := deleteCustomerUC.NewUseCase(
		customerRepository,
		bookingRepository,
		deleteBookingUseCase,
		log,
	)

	// Инициализируем handlers
	createTrip := createTripHandler.NewHandler(tripSvc, log)
	getTrip := getTripHandler.NewHandler(tripSvc, log)
	updateTrip := updateTripHandler.NewHandler(tripSvc, log)
	deleteTrip := deleteTripHandler.NewHandler(deleteTripUseCase, log)
	listSelectableTrips := listSelectableTripsHandler.NewHandler(tripSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(deleteBookingUseCase, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(deleteCustomerUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarIndex, log)
	rebuildCalendar := rebuildCalendarHandler.NewHandler(calendarIndex, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор рейсов под черновик бронирования
	api.HandleFunc("/trips/selectable", listSelectableTrips.Handle).Methods(http.MethodGet)

	// Календарь рейсов и бронирований
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Рейсы ---
	protected.HandleFunc("/trucks/{truckId}/trips", createTrip.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/trucks/{truckId}/trips/{tripId}", getTrip.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/trucks/{truckId}/trips/{tripId}", updateTrip.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/trucks/{truckId}/trips/{tripId}", deleteTrip.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// --- Календарь ---
	protected.HandleFunc("/calendar/rebuild", rebuildCalendar.Handle).Methods(http.MethodPost)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
