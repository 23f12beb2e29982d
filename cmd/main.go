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

	calculatePriceHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_booking"
	createCoachHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_coach"
	createCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_court"
	createPricingRuleHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_pricing_rule"
	deleteCoachHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_coach"
	deleteCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_court"
	deletePricingRuleHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_pricing_rule"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_court"
	getTimeSlotsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_time_slots"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_user_bookings"
	listCoachesHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_coaches"
	listCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_courts"
	listEquipmentHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_equipment"
	listPricingRulesHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_pricing_rules"
	updateCoachHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_coach"
	updateCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_court"
	updateEquipmentHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_equipment"
	updatePricingRuleHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_pricing_rule"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	coachRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/coach"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	equipmentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/equipment"
	ruleRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/rule"
	memberServiceClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/memberservice"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	coachesService "github.com/m04kA/SMC-CourtBookingService/internal/service/coaches"
	courtsService "github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	equipmentService "github.com/m04kA/SMC-CourtBookingService/internal/service/equipment"
	rulesService "github.com/m04kA/SMC-CourtBookingService/internal/service/rules"
	calculatePriceUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/calculate_price"
	createBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	getTimeSlotsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/migrator"
	"github.com/m04kA/SMC-CourtBookingService/pkg/mq"
	"github.com/m04kA/SMC-CourtBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtBookingService...")
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

	// Применяем миграции (если включено)
	if cfg.Migrations.Auto {
		m, err := migrator.New(db, cfg.Migrations.Path)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := m.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := m.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version %d", version)
	}

	// Инициализируем интеграционного клиента MemberService
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MemberService=%s timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем publisher событий (если включён)
	// Интерфейсы объявлены в потребителях, nil означает выключенную шину
	var bookingEvents bookingsService.EventPublisher
	var createdEvents createBookingUC.EventPublisher

	if cfg.Events.Enabled {
		publisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()

		bookingEvents = publisher
		createdEvents = publisher
		log.Info("Event publisher connected (exchange=%s)", cfg.Events.Exchange)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		courtRepository     *courtRepo.Repository
		coachRepository     *coachRepo.Repository
		equipmentRepository *equipmentRepo.Repository
		ruleRepository      *ruleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		coachRepository = coachRepo.NewRepository(wrappedDB)
		equipmentRepository = equipmentRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		coachRepository = coachRepo.NewRepository(db)
		equipmentRepository = equipmentRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, bookingEvents, log)
	courtSvc := courtsService.NewService(courtRepository, log)
	coachSvc := coachesService.NewService(coachRepository, log)
	equipmentSvc := equipmentService.NewService(equipmentRepository, log)
	ruleSvc := rulesService.NewService(ruleRepository, log)

	// Инициализируем use cases
	composition := cfg.Pricing.CompositionMode()
	log.Info("Pricing rule composition mode: %s", composition)

	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		courtRepository,
		coachRepository,
		ruleRepository,
		equipmentRepository,
		composition,
		log,
	)

	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		courtRepository,
		bookingRepository,
		ruleRepository,
		composition,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		coachRepository,
		ruleRepository,
		equipmentRepository,
		memberClient,
		createdEvents,
		txMgr,
		composition,
		log,
	)

	// Инициализируем handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)
	listCoaches := listCoachesHandler.NewHandler(coachSvc, log)
	createCoach := createCoachHandler.NewHandler(coachSvc, log)
	updateCoach := updateCoachHandler.NewHandler(coachSvc, log)
	deleteCoach := deleteCoachHandler.NewHandler(coachSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(equipmentSvc, log)
	updateEquipment := updateEquipmentHandler.NewHandler(equipmentSvc, log)
	listPricingRules := listPricingRulesHandler.NewHandler(ruleSvc, log)
	createPricingRule := createPricingRuleHandler.NewHandler(ruleSvc, log)
	updatePricingRule := updatePricingRuleHandler.NewHandler(ruleSvc, log)
	deletePricingRule := deletePricingRuleHandler.NewHandler(ruleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт цены слота без бронирования
	api.HandleFunc("/price-quotes", calculatePrice.Handle).Methods(http.MethodPost)

	// Каталог кортов
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)

	// Сетка слотов корта на дату
	api.HandleFunc("/courts/{courtId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Каталоги тренеров, инвентаря и правил ценообразования
	api.HandleFunc("/coaches", listCoaches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing-rules", listPricingRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление каталогом (для персонала клуба) ---
	protected.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/courts/{courtId}", deleteCourt.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/coaches", createCoach.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}", updateCoach.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/coaches/{coachId}", deleteCoach.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/equipment/{equipmentId}", updateEquipment.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/pricing-rules", createPricingRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pricing-rules/{ruleId}", updatePricingRule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/pricing-rules/{ruleId}", deletePricingRule.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
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
