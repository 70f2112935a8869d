package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	allocateRangeHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/allocate_range"
	checkConflictsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/check_conflicts"
	deallocateRangeHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/deallocate_range"
	getDayHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_day"
	monthViewHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/month_view"
	replaceRangeHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/replace_range"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/events"
	allocationRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/allocation"
	allocationMongoRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/allocationmongo"
	calendarService "github.com/m04kA/SMC-CalendarService/internal/service/calendar"
	allocateRangeUC "github.com/m04kA/SMC-CalendarService/internal/usecase/allocate_range"
	checkConflictsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/check_conflicts"
	deallocateRangeUC "github.com/m04kA/SMC-CalendarService/internal/usecase/deallocate_range"
	replaceRangeUC "github.com/m04kA/SMC-CalendarService/internal/usecase/replace_range"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/nooptxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
)

// AllocationRepository общий интерфейс обоих бэкендов хранилища
type AllocationRepository interface {
	CreateRange(ctx context.Context, alloc domain.RangeAllocation) error
	DeleteRange(ctx context.Context, rng domain.DateRange) (int64, error)
	GetByDay(ctx context.Context, dayKey string) (*domain.Allocation, error)
	GetByDays(ctx context.Context, dayKeys []string) ([]*domain.Allocation, error)
	GetByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Allocation, error)
}

// TxManager интерфейс для transaction manager (используется в usecases)
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// .env опционален, используется для локальной разработки
	_ = godotenv.Load()

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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml (driver=%s)", cfg.Database.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу: postgres (по умолчанию) или mongo
	var (
		repository AllocationRepository
		txMgr      TxManager
	)

	switch cfg.Database.Driver {
	case config.DriverMongo:
		mongoDB, err := allocationMongoRepo.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Fatal("Failed to connect to mongo: %v", err)
		}
		defer func() {
			_ = mongoDB.Client().Disconnect(context.Background())
		}()
		log.Info("Successfully connected to mongo (database=%s)", cfg.Mongo.Database)

		repository = allocationMongoRepo.NewRepository(mongoDB)
		// Mongo-адаптер транзакционен внутри каждого батча, внешний tx manager не нужен
		txMgr = nooptxmanager.NewTransactionManager()

	default:
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

		// Применяем миграции
		if cfg.Database.MigrationsPath != "" {
			if err := runMigrations(db, cfg); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
			log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
		}

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			repository = allocationRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			repository = allocationRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	// Инициализируем публикацию событий календаря
	var publisher interface {
		Publish(ctx context.Context, event events.AllocationEvent) error
	}

	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Fatal("Failed to connect to kafka: %v", err)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NewNoopPublisher()
		log.Info("Kafka disabled, events will not be published")
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(repository, log)

	// Инициализируем use cases
	allocateRangeUseCase := allocateRangeUC.NewUseCase(repository, txMgr, publisher, log)
	checkConflictsUseCase := checkConflictsUC.NewUseCase(repository, log)
	deallocateRangeUseCase := deallocateRangeUC.NewUseCase(repository, publisher, log)
	replaceRangeUseCase := replaceRangeUC.NewUseCase(repository, txMgr, publisher, log)

	// Инициализируем handlers
	allocateRange := allocateRangeHandler.NewHandler(allocateRangeUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	deallocateRange := deallocateRangeHandler.NewHandler(deallocateRangeUseCase, log)
	replaceRange := replaceRangeHandler.NewHandler(replaceRangeUseCase, log)
	getDay := getDayHandler.NewHandler(calendarSvc, log)
	monthView := monthViewHandler.NewHandler(calendarSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Проверка диапазона на конфликты
	api.HandleFunc("/allocations/conflict-check", checkConflicts.Handle).Methods(http.MethodPost)

	// Аллокация на конкретную дату
	api.HandleFunc("/calendar/days/{date}", getDay.Handle).Methods(http.MethodGet)

	// Проекция месяца (месяц нумеруется с нуля)
	api.HandleFunc("/calendar/{year}/{month}", monthView.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Аллокация диапазона (бронь или блокировка)
	protected.HandleFunc("/allocations", allocateRange.Handle).Methods(http.MethodPost)

	// Освобождение диапазона
	protected.HandleFunc("/allocations", deallocateRange.Handle).Methods(http.MethodDelete)

	// Перенос диапазона на новые даты
	protected.HandleFunc("/allocations/replace", replaceRange.Handle).Methods(http.MethodPost)

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

func runMigrations(db *sql.DB, cfg *config.Config) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+cfg.Database.MigrationsPath,
		cfg.Database.DBName,
		driver,
	)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
