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

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkDateAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_date_availability"
	getAvailabilityCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability_calendar"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getWeeklyScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_weekly_schedule"
	nextAvailableDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/next_available_date"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/slots"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/timezone"
	scheduleCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/schedule"
	appointmentTypeRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/appointment_type"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	checkDateAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_date_availability"
	getAvailabilityCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability_calendar"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	nextAvailableDateUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available_date"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.Path()
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем часовые пояса
	registry, err := timezone.NewRegistry(cfg.Timezones.Supported, cfg.Timezones.Aliases)
	if err != nil {
		log.Fatal("Failed to load timezones: %v", err)
	}
	converter := timezone.NewConverter(registry)
	log.Info("Timezones loaded: %v (aliases=%d)", registry.Supported(), len(cfg.Timezones.Aliases))

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		decisionRecorder availability.Recorder
		slotRecorder     slots.Recorder
		cacheRecorder    scheduleCache.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		decisionRecorder = metricsCollector
		slotRecorder = metricsCollector
		cacheRecorder = metricsCollector
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

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	scheduleRepository := scheduleRepo.NewRepository(executor)
	appointmentTypeRepository := appointmentTypeRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)

	// Кеш расписаний (если включен)
	var schedules checkDateAvailabilityUC.ScheduleLoader = scheduleRepository
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кеш не обязателен: при недоступном redis расписания читаются из базы
			log.Warn("Redis is unavailable at %s: %v", cfg.Cache.Addr, err)
		}
		cancel()

		schedules = scheduleCache.NewCache(redisClient, scheduleRepository, cfg.Cache.TTL(), log, cacheRecorder)
		log.Info("Schedule cache enabled (addr=%s, ttl=%s)", cfg.Cache.Addr, cfg.Cache.TTL())
	}

	// Инициализируем движок
	resolver := availability.NewResolver(converter, availability.Config{
		DefaultOpenTime:  cfg.Engine.DefaultOpenTime,
		DefaultCloseTime: cfg.Engine.DefaultCloseTime,
		MaxHorizonDays:   cfg.Engine.MaxHorizonDays,
		MaxCalendarDays:  cfg.Engine.MaxCalendarDays,
		CalendarWorkers:  cfg.Engine.CalendarWorkers,
	}, log, decisionRecorder)
	generator := slots.NewGenerator(resolver, converter, cfg.Engine.MinBookingNotice(), slotRecorder)
	log.Info("Engine initialized (default hours %s-%s, min notice %s, calendar workers %d)",
		cfg.Engine.DefaultOpenTime, cfg.Engine.DefaultCloseTime, cfg.Engine.MinBookingNotice(), cfg.Engine.CalendarWorkers)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		schedules,
		cfg.Engine.DefaultOpenTime,
		cfg.Engine.DefaultCloseTime,
		log,
	)

	// Инициализируем use cases
	checkDateAvailabilityUseCase := checkDateAvailabilityUC.NewUseCase(
		schedules,
		resolver,
		registry,
		log,
	)

	nextAvailableDateUseCase := nextAvailableDateUC.NewUseCase(
		schedules,
		resolver,
		registry,
		converter,
		log,
		cfg.Engine.DefaultHorizonDays,
		cfg.Engine.MaxHorizonDays,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		schedules,
		appointmentTypeRepository,
		bookingRepository,
		generator,
		converter,
		registry,
		log,
	)

	getAvailabilityCalendarUseCase := getAvailabilityCalendarUC.NewUseCase(
		schedules,
		resolver,
		registry,
		converter,
		log,
		cfg.Engine.DefaultCalendarDays,
		cfg.Engine.MaxCalendarDays,
	)

	// Инициализируем handlers
	checkDateAvailability := checkDateAvailabilityHandler.NewHandler(checkDateAvailabilityUseCase, log)
	nextAvailableDate := nextAvailableDateHandler.NewHandler(nextAvailableDateUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailabilityCalendar := getAvailabilityCalendarHandler.NewHandler(getAvailabilityCalendarUseCase, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверки живости и готовности
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Warn("GET /readyz - Database is not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "database is not ready")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Действующее недельное расписание
	api.HandleFunc("/businesses/{businessId}/weekly-schedule",
		getWeeklySchedule.Handle).Methods(http.MethodGet)

	// Доступность конкретной даты
	api.HandleFunc("/businesses/{businessId}/availability",
		checkDateAvailability.Handle).Methods(http.MethodGet)

	// Ближайшая доступная дата
	api.HandleFunc("/businesses/{businessId}/next-available-date",
		nextAvailableDate.Handle).Methods(http.MethodGet)

	// Календарь доступности на период
	api.HandleFunc("/businesses/{businessId}/calendar",
		getAvailabilityCalendar.Handle).Methods(http.MethodGet)

	// Слоты записи на дату
	api.HandleFunc("/businesses/{businessId}/appointment-types/{appointmentTypeId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

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
