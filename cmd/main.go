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

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AdminPanel/internal/api"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/config"
	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	auditRepo "github.com/m04kA/SMC-AdminPanel/internal/infra/storage/audit"
	"github.com/m04kA/SMC-AdminPanel/internal/integrations/authservice"
	"github.com/m04kA/SMC-AdminPanel/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/workspace"
	"github.com/m04kA/SMC-AdminPanel/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
	"github.com/m04kA/SMC-AdminPanel/pkg/metrics"
)

// auditStore журнал аудита: PostgreSQL или заглушка
type auditStore interface {
	workspace.AuditRecorder
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

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

	log.Info("Starting SMC-AdminPanel...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал аудита (если включена база данных)
	var audit auditStore = auditRepo.NoopRepository{}
	if cfg.Database.Enabled {
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

		if cfg.Metrics.Enabled {
			audit = auditRepo.NewRepository(dbmetrics.Wrap(db, metricsCollector)).WithObserver(metricsCollector)
			log.Info("Database metrics collection started")
		} else {
			audit = auditRepo.NewRepository(db)
		}
	} else {
		log.Info("Database disabled, audit journal is not persisted")
	}

	// Клиент REST бэкенда салона
	backendClient := backend.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		backendClient = backendClient.WithObserver(metricsCollector)
	}
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Проверка учетных данных администратора
	var authenticator session.Authenticator
	switch cfg.Auth.Mode {
	case config.AuthModeRemote:
		authClient := authservice.NewClient(
			cfg.Auth.ServiceURL,
			time.Duration(cfg.Auth.ServiceTimeout)*time.Second,
			log,
		)
		authenticator = session.NewRemoteAuthenticator(authClient)
		log.Info("Remote authentication enabled (url=%s)", cfg.Auth.ServiceURL)
	default:
		static, err := session.NewStaticAuthenticator(cfg.Auth.Username, cfg.Auth.PasswordHash)
		if err != nil {
			log.Fatal("Failed to initialize static authenticator: %v", err)
		}
		authenticator = static
		log.Info("Static authentication enabled (username=%s)", cfg.Auth.Username)
	}

	catalog, err := domain.NewCatalog(cfg.Pagination.PageSizes)
	if err != nil {
		log.Fatal("Failed to build family catalog: %v", err)
	}

	// Рабочие пространства администраторов живут столько же, сколько cookie сессии
	sessionTTL := time.Duration(cfg.Session.MaxAge) * time.Second
	registry := workspace.NewRegistry(catalog, backendClient, audit, sessionTTL, log)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go registry.Run(sweepCtx, time.Minute)

	sessions := middleware.NewSessionManager(middleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		Secret:     []byte(cfg.Session.Secret),
		MaxAge:     cfg.Session.MaxAge,
		Secure:     cfg.Session.Secure,
	})

	// Настраиваем роутер
	router := api.NewRouter(api.Deps{
		Authenticator:  authenticator,
		Registry:       registry,
		Sessions:       sessions,
		Audit:          audit,
		Logger:         log,
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
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
	stopSweep()

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
