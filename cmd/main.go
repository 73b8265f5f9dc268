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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addServiceTimeHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/add_service_time"
	assignMinisterHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/assign_minister"
	copyWeekHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/copy_week"
	createMinisterHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/create_minister"
	deleteMinisterHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/delete_minister"
	deleteServiceTimeHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/delete_service_time"
	getMyScheduleHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/get_my_schedule"
	getRevisionHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/get_revision"
	getScheduleHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/get_schedule"
	listMinistersHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/list_ministers"
	listServiceTimesHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/list_service_times"
	releaseSlotHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/release_slot"
	resetCalendarHandler "github.com/m04kA/SMC-MinisterSchedule/internal/api/handlers/reset_calendar"
	"github.com/m04kA/SMC-MinisterSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-MinisterSchedule/internal/config"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/notify"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/database"
	"github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/migrations"
	ministerRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/minister"
	serviceTimeRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/servicetime"
	slotRepo "github.com/m04kA/SMC-MinisterSchedule/internal/infra/storage/slot"
	"github.com/m04kA/SMC-MinisterSchedule/internal/integrations/telegram"
	ministersService "github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
	serviceTimesService "github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes"
	slotsService "github.com/m04kA/SMC-MinisterSchedule/internal/service/slots"
	assignMinisterUC "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/assign_minister"
	buildScheduleUC "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/build_schedule"
	copyWeekUC "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/copy_week"
	ensureSlotsUC "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/ensure_slots"
	releaseSlotUC "github.com/m04kA/SMC-MinisterSchedule/internal/usecase/release_slot"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/dbmetrics"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/logger"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/metrics"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/sqlbuilder"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/txmanager"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/types"
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

	log.Info("Starting SMC-MinisterSchedule...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	db, err := database.Open(startupCtx, cfg.Database.Driver, cfg.Database.DSN(), database.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	// Применяем миграции
	if err := migrations.Run(startupCtx, db, cfg.Database.Driver, log); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Обертка с метриками (metricsCollector может быть nil)
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// SQLite не поддерживает уровни изоляции кроме LevelDefault; запись там и так сериализована
	var txOpts []txmanager.Option
	if cfg.Database.Driver == sqlbuilder.DriverSQLite {
		txOpts = append(txOpts, txmanager.WithSerializableLevel(sql.LevelDefault))
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB, txOpts...)

	// Репозитории
	serviceTimeRepository := serviceTimeRepo.NewRepository(wrappedDB, cfg.Database.Driver)
	slotRepository := slotRepo.NewRepository(wrappedDB, cfg.Database.Driver)
	ministerRepository := ministerRepo.NewRepository(wrappedDB, cfg.Database.Driver)

	// Оповещения об изменении календаря
	broadcaster := notify.NewBroadcaster()

	// Сервисы
	ministerSvc, err := ministersService.NewService(ministerRepository, broadcaster, cfg.Cache.MinistersSize, log)
	if err != nil {
		log.Fatal("Failed to initialize ministers service: %v", err)
	}
	serviceTimeSvc := serviceTimesService.NewService(
		serviceTimeRepository,
		slotRepository,
		txMgr,
		broadcaster,
		cfg.Schedule.DefaultPositions,
		log,
	)
	slotSvc := slotsService.NewService(slotRepository, log)

	// Подписчики на изменения календаря
	broadcaster.Subscribe(func(_ context.Context, _ string) {
		ministerSvc.InvalidateCache()
	})
	if metricsCollector != nil {
		broadcaster.Subscribe(func(_ context.Context, reason string) {
			metricsCollector.CalendarUpdates.WithLabelValues(reason).Inc()
		})
	}
	if cfg.Telegram.Enabled {
		tgBot, err := telegram.NewBot(cfg.Telegram.Token)
		if err != nil {
			log.Fatal("Failed to initialize telegram bot: %v", err)
		}
		broadcaster.Subscribe(telegram.NewAnnouncer(tgBot, cfg.Telegram.ChatID, log).Subscriber())
		log.Info("Telegram announcements enabled (chat_id=%d)", cfg.Telegram.ChatID)
	}

	// Use cases
	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Invalid schedule timezone: %v", err)
	}

	fallback, err := fallbackPolicy(cfg.Schedule.Fallback)
	if err != nil {
		log.Fatal("Invalid fallback configuration: %v", err)
	}
	if fallback.Enabled {
		log.Warn("Fallback service list enabled for %d weekdays", len(fallback.Weekdays))
	}

	ensureSlotsUseCase := ensureSlotsUC.NewUseCase(slotRepository, serviceTimeRepository, fallback, log)
	buildScheduleUseCase := buildScheduleUC.NewUseCase(
		serviceTimeRepository,
		slotRepository,
		ensureSlotsUseCase,
		buildScheduleUC.Settings{
			DefaultDays: cfg.Schedule.DefaultRangeDays,
			MaxDays:     cfg.Schedule.MaxRangeDays,
			Location:    location,
		},
		log,
	)
	assignMinisterUseCase := assignMinisterUC.NewUseCase(slotRepository, ministerRepository, txMgr, broadcaster, log)
	releaseSlotUseCase := releaseSlotUC.NewUseCase(slotRepository, txMgr, broadcaster, log)
	copyWeekUseCase := copyWeekUC.NewUseCase(
		serviceTimeRepository,
		broadcaster,
		cfg.Schedule.WeekStartDay(),
		location,
		log,
	)

	// Handlers
	getSchedule := getScheduleHandler.NewHandler(buildScheduleUseCase, log)
	getMySchedule := getMyScheduleHandler.NewHandler(buildScheduleUseCase, ministerSvc, log)
	assignMinister := assignMinisterHandler.NewHandler(assignMinisterUseCase, slotSvc, ministerSvc, log)
	releaseSlot := releaseSlotHandler.NewHandler(releaseSlotUseCase, slotSvc, ministerSvc, log)
	listServiceTimes := listServiceTimesHandler.NewHandler(serviceTimeSvc, log)
	addServiceTime := addServiceTimeHandler.NewHandler(serviceTimeSvc, log)
	deleteServiceTime := deleteServiceTimeHandler.NewHandler(serviceTimeSvc, log)
	copyWeek := copyWeekHandler.NewHandler(copyWeekUseCase, log)
	listMinisters := listMinistersHandler.NewHandler(ministerSvc, log)
	createMinister := createMinisterHandler.NewHandler(ministerSvc, log)
	deleteMinister := deleteMinisterHandler.NewHandler(ministerSvc, log)
	resetCalendar := resetCalendarHandler.NewHandler(serviceTimeSvc, log)
	getRevision := getRevisionHandler.NewHandler(broadcaster)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-times", listServiceTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/revision", getRevision.Handle).Methods(http.MethodGet)

	// ============================================================
	// USER ROUTES (X-User-ID, X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/me/schedule", getMySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}/assign", assignMinister.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/release", releaseSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/ministers", listMinisters.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin)

	admin.HandleFunc("/service-times", addServiceTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/service-times/copy-week", copyWeek.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/service-times/{serviceTimeId}", deleteServiceTime.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/ministers", createMinister.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/ministers/{ministerId}", deleteMinister.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/reset", resetCalendar.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор статистики connection pool
	close(stopMetricsCh)

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

// fallbackPolicy переводит секцию [schedule.fallback] в политику материализации
func fallbackPolicy(cfg config.FallbackConfig) (ensureSlotsUC.FallbackPolicy, error) {
	policy := ensureSlotsUC.FallbackPolicy{Enabled: cfg.Enabled}
	if !cfg.Enabled {
		return policy, nil
	}

	weekdays, err := cfg.ParsedWeekdays()
	if err != nil {
		return policy, err
	}
	policy.Weekdays = weekdays

	for _, s := range cfg.Services {
		t, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			return policy, err
		}
		policy.Services = append(policy.Services, ensureSlotsUC.FallbackService{
			Time:      t,
			Name:      s.Name,
			Positions: s.Positions,
		})
	}

	return policy, nil
}
