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

	addCustomSlotHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/add_custom_slot"
	applySlotConfigHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/apply_slot_config"
	copyToWeekdaysHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/copy_to_weekdays"
	createConsultationHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/create_consultation"
	deleteSlotHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/delete_slot"
	getAdminAvailabilityHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/get_admin_availability"
	getBookingDaysHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/get_booking_days"
	getPublicAvailabilityHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/get_public_availability"
	resetDayHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/reset_day"
	saveAvailabilityHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/save_availability"
	toggleSlotHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/toggle_slot"
	undoCopyHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/undo_copy"
	updateSlotHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/update_slot"
	updateSlotConfigHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/update_slot_config"
	verifyBookingAccessHandler "github.com/m04kA/IRS-ConsultationService/internal/api/handlers/verify_booking_access"
	"github.com/m04kA/IRS-ConsultationService/internal/api/middleware"
	"github.com/m04kA/IRS-ConsultationService/internal/config"
	availabilityRepo "github.com/m04kA/IRS-ConsultationService/internal/infra/storage/availability"
	calendarServiceClient "github.com/m04kA/IRS-ConsultationService/internal/integrations/calendarservice"
	grantServiceClient "github.com/m04kA/IRS-ConsultationService/internal/integrations/grantservice"
	availabilityService "github.com/m04kA/IRS-ConsultationService/internal/service/availability"
	grantsService "github.com/m04kA/IRS-ConsultationService/internal/service/grants"
	createConsultationUC "github.com/m04kA/IRS-ConsultationService/internal/usecase/create_consultation"
	getAdminAvailabilityUC "github.com/m04kA/IRS-ConsultationService/internal/usecase/get_admin_availability"
	planBookingUC "github.com/m04kA/IRS-ConsultationService/internal/usecase/plan_booking"
	"github.com/m04kA/IRS-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/IRS-ConsultationService/pkg/logger"
	"github.com/m04kA/IRS-ConsultationService/pkg/metrics"
	"github.com/m04kA/IRS-ConsultationService/pkg/simpletxmanager"
	"github.com/m04kA/IRS-ConsultationService/pkg/txmanager"
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

	log.Info("Starting IRS-ConsultationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	calendarClient := calendarServiceClient.NewClient(
		cfg.CalendarService.URL,
		time.Duration(cfg.CalendarService.Timeout)*time.Second,
		log,
	)
	grantClient := grantServiceClient.NewClient(
		cfg.GrantService.URL,
		time.Duration(cfg.GrantService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CalendarService=%s timeout=%ds, GrantService=%s timeout=%ds)",
		cfg.CalendarService.URL, cfg.CalendarService.Timeout, cfg.GrantService.URL, cfg.GrantService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var availabilityRepository *availabilityRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		calendarClient,
		txMgr,
		log,
	)
	grantsSvc := grantsService.NewService(grantClient, log)

	// Фоновая проверка истечения грантов
	stopSweeperCh := make(chan struct{})
	grantsSvc.StartExpirySweeper(
		time.Duration(cfg.Booking.GrantSweepInterval)*time.Second,
		stopSweeperCh,
	)
	log.Info("Grant expiry sweeper started (interval=%ds)", cfg.Booking.GrantSweepInterval)

	// Инициализируем use cases
	getAdminAvailabilityUseCase := getAdminAvailabilityUC.NewUseCase(availabilitySvc, log)
	planBookingUseCase := planBookingUC.NewUseCase(availabilitySvc, grantsSvc, calendarClient, log)
	createConsultationUseCase := createConsultationUC.NewUseCase(availabilitySvc, grantsSvc, calendarClient, log)

	// Инициализируем handlers
	publicAdminID := cfg.Booking.PublicAdminID
	getAdminAvailability := getAdminAvailabilityHandler.NewHandler(getAdminAvailabilityUseCase, log)
	saveAvailability := saveAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateSlotConfig := updateSlotConfigHandler.NewHandler(availabilitySvc, log)
	applySlotConfig := applySlotConfigHandler.NewHandler(availabilitySvc, log)
	addCustomSlot := addCustomSlotHandler.NewHandler(availabilitySvc, log)
	updateSlot := updateSlotHandler.NewHandler(availabilitySvc, log)
	toggleSlot := toggleSlotHandler.NewHandler(availabilitySvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(availabilitySvc, log)
	copyToWeekdays := copyToWeekdaysHandler.NewHandler(availabilitySvc, log)
	undoCopy := undoCopyHandler.NewHandler(availabilitySvc, log)
	resetDay := resetDayHandler.NewHandler(availabilitySvc, log)
	getPublicAvailability := getPublicAvailabilityHandler.NewHandler(availabilitySvc, publicAdminID, log)
	verifyBookingAccess := verifyBookingAccessHandler.NewHandler(grantsSvc, log)
	getBookingDays := getBookingDaysHandler.NewHandler(planBookingUseCase, publicAdminID, log)
	createConsultation := createConsultationHandler.NewHandler(createConsultationUseCase, publicAdminID, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичная лента доступности
	api.HandleFunc("/public/availability", getPublicAvailability.Handle).Methods(http.MethodGet)

	// Проверка ссылки на бронирование
	api.HandleFunc("/booking/verify", verifyBookingAccess.Handle).Methods(http.MethodPost)

	// Планировщик бронирования
	api.HandleFunc("/booking/days", getBookingDays.Handle).Methods(http.MethodGet)

	// Создание консультации
	api.HandleFunc("/booking/consultations", createConsultation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth, middleware.AdminSelf)

	// Месячная сетка доступности администратора
	protected.HandleFunc("/admins/{adminId}/availability",
		getAdminAvailability.Handle).Methods(http.MethodGet)

	// Массовое сохранение месяца
	protected.HandleFunc("/admins/{adminId}/availability",
		saveAvailability.Handle).Methods(http.MethodPut)

	// Конфигурация слотов
	protected.HandleFunc("/admins/{adminId}/slot-config",
		updateSlotConfig.Handle).Methods(http.MethodPut)

	// Перегенерация месяца из конфигурации
	protected.HandleFunc("/admins/{adminId}/availability/apply",
		applySlotConfig.Handle).Methods(http.MethodPost)

	// Операции над слотами дня
	protected.HandleFunc("/admins/{adminId}/availability/days/{date}/slots",
		addCustomSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admins/{adminId}/availability/days/{date}/slots/{start}",
		updateSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admins/{adminId}/availability/days/{date}/slots/{start}/toggle",
		toggleSlot.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admins/{adminId}/availability/days/{date}/slots/{start}",
		deleteSlot.Handle).Methods(http.MethodDelete)

	// Копирование дня на будние и отмена
	protected.HandleFunc("/admins/{adminId}/availability/days/{date}/copy",
		copyToWeekdays.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admins/{adminId}/availability/undo",
		undoCopy.Handle).Methods(http.MethodPost)

	// Сброс изменённого дня
	protected.HandleFunc("/admins/{adminId}/availability/days/{date}/reset",
		resetDay.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые горутины
	close(stopSweeperCh)
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
