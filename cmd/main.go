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
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cancelBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_calendar"
	getSettingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/list_bookings"
	quoteDepositHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/quote_deposit"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/calendar"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	settingsCache "github.com/m04kA/SMC-VenueBooking/internal/infra/cache/settings"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/settings"
	bookingsService "github.com/m04kA/SMC-VenueBooking/internal/service/bookings"
	settingsService "github.com/m04kA/SMC-VenueBooking/internal/service/settings"
	"github.com/m04kA/SMC-VenueBooking/internal/telemetry"
	confirmBookingUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
	getCalendarLayoutUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_calendar_layout"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
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

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from config.toml")

	// Трассировка (если указан endpoint коллектора)
	shutdownTracing, err := telemetry.Setup(context.Background(), telemetry.Config{
		ServiceName: cfg.Metrics.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Endpoint != "" {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.Endpoint)
	}

	// Инициализируем метрики (если включены). nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кэш настроек аккаунта. Недоступный Redis не блокирует запуск
	var cache settingsService.SettingsCache = settingsCache.Noop{}
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, settings cache disabled: %v", cfg.Cache.Addr, err)
		} else {
			cache = settingsCache.NewCache(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
			log.Info("Settings cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
		}
	}

	// Сетка календаря
	grid, err := calendar.NewGrid(cfg.Calendar.WindowStartHour, cfg.Calendar.WindowEndHour, cfg.Calendar.SlotMinutes)
	if err != nil {
		log.Fatal("Invalid calendar grid: %v", err)
	}

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		settingsRepository,
		cache,
		settingsService.Defaults{
			TaxRatePercent:    decimal.NewFromFloat(cfg.Booking.DefaultTaxRatePercent),
			HoldDurationHours: cfg.Booking.DefaultHoldDurationHours,
		},
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		settingsSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		metricsCollector,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		txMgr,
		metricsCollector,
		log,
	)
	getCalendarLayoutUseCase := getCalendarLayoutUC.NewUseCase(
		bookingRepository,
		grid,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarLayoutUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, confirmBookingUseCase, log)
	quoteDeposit := quoteDepositHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix, все маршруты требуют X-Account-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Календарь ---
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Расчет депозита ---
	api.HandleFunc("/deposit-quote", quoteDeposit.Handle).Methods(http.MethodPost)

	// --- Настройки аккаунта ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Metrics.ServiceName),
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

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
