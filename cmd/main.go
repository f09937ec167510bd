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
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createQuoteHandler "github.com/m04kA/GLS-QuoteService/internal/api/handlers/create_quote"
	getQuoteHandler "github.com/m04kA/GLS-QuoteService/internal/api/handlers/get_quote"
	listQuotesHandler "github.com/m04kA/GLS-QuoteService/internal/api/handlers/list_quotes"
	webhookQuoteHandler "github.com/m04kA/GLS-QuoteService/internal/api/handlers/webhook_quote"
	"github.com/m04kA/GLS-QuoteService/internal/api/middleware"
	"github.com/m04kA/GLS-QuoteService/internal/config"
	quoteRepo "github.com/m04kA/GLS-QuoteService/internal/infra/storage/quote"
	notifierClient "github.com/m04kA/GLS-QuoteService/internal/integrations/notifier"
	quotesService "github.com/m04kA/GLS-QuoteService/internal/service/quotes"
	ingestWebhookUC "github.com/m04kA/GLS-QuoteService/internal/usecase/ingest_webhook"
	submitQuoteUC "github.com/m04kA/GLS-QuoteService/internal/usecase/submit_quote"
	"github.com/m04kA/GLS-QuoteService/pkg/dbmetrics"
	"github.com/m04kA/GLS-QuoteService/pkg/logger"
	"github.com/m04kA/GLS-QuoteService/pkg/metrics"
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

	log.Info("Starting GLS-QuoteService...")
	log.Info("Configuration loaded from config.toml")

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
	if cfg.Database.MigrationsDir != "" {
		if err := runMigrations(db, cfg.Database.MigrationsDir, cfg.Database.DBName); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsDir)
	}

	// Инициализируем клиент уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	if notifier.Enabled() {
		log.Info("Notifier enabled (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		log.Info("Notifier disabled: no URL configured")
	}

	// Инициализируем репозиторий (с метриками или без)
	var quoteRepository *quoteRepo.Repository
	var submitMetrics submitQuoteUC.Metrics
	var webhookMetrics ingestWebhookUC.Metrics

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.Wrap(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		quoteRepository = quoteRepo.NewRepository(wrappedDB)
		submitMetrics = metricsCollector
		webhookMetrics = metricsCollector
	} else {
		quoteRepository = quoteRepo.NewRepository(db)
	}

	// Инициализируем сервисы и use cases
	quotesSvc := quotesService.NewService(quoteRepository, log)
	submitQuoteUseCase := submitQuoteUC.NewUseCase(quoteRepository, notifier, submitMetrics, log)
	ingestWebhookUseCase := ingestWebhookUC.NewUseCase(quoteRepository, notifier, webhookMetrics, log)

	// Инициализируем handlers
	createQuote := createQuoteHandler.NewHandler(submitQuoteUseCase, log)
	getQuote := getQuoteHandler.NewHandler(quotesSvc, log)
	listQuotes := listQuotesHandler.NewHandler(quotesSvc, log)
	webhookQuote := webhookQuoteHandler.NewHandler(ingestWebhookUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Создание заявки (валидируемый путь)
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// Список всех заявок (для админской таблицы)
	api.HandleFunc("/quotes", listQuotes.Handle).Methods(http.MethodGet)

	// Получение заявки по ID
	api.HandleFunc("/quotes/{quoteId}", getQuote.Handle).Methods(http.MethodGet)

	// Прием заявок от сторонних form-сервисов (всегда отвечает 200)
	r.HandleFunc("/webhook/quote", webhookQuote.Handle).Methods(http.MethodPost)

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

// runMigrations применяет file-миграции к уже открытому соединению
func runMigrations(db *sql.DB, dir string, dbName string) error {
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{DatabaseName: dbName})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
