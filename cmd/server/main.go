package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"cylindertrack/internal/config"
	"cylindertrack/internal/handler"
	"cylindertrack/internal/logger"
	"cylindertrack/internal/metrics"
	"cylindertrack/internal/port"
	"cylindertrack/internal/repository/memory"
	"cylindertrack/internal/repository/postgres"
	"cylindertrack/internal/router"
	"cylindertrack/internal/service"
	s3storage "cylindertrack/internal/storage/s3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type repositories struct {
	settings   port.SettingsRepository
	employees  port.EmployeeRepository
	deliveries port.DeliveryRepository
	pinger     port.Pinger
	close      func() error
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openStore(cfg, zl)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := repos.close(); cerr != nil {
			zl.Warn("closing store", zap.Error(cerr))
		}
	}()

	// Initialize storage
	var objects port.ObjectStorage
	if cfg.S3.Enabled() {
		objects, err = s3storage.NewClient(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		zl.Info("export sharing enabled", zap.String("bucket", cfg.S3.Bucket))
	} else {
		zl.Info("export sharing disabled, no S3 bucket configured")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize services
	settingsSvc := service.NewSettingsService(repos.settings)
	employeeSvc := service.NewEmployeeService(repos.employees)
	deliverySvc := service.NewDeliveryService(repos.deliveries, m, zl)
	exportSvc := service.NewExportService(repos.deliveries, objects, service.ExportConfig{
		Prefix:        cfg.S3.Prefix,
		PresignExpiry: cfg.S3.PresignExpiry,
	}, m, zl)

	// Setup router
	r := router.Setup(router.Handlers{
		Settings: handler.NewSettingsHandler(settingsSvc),
		Employee: handler.NewEmployeeHandler(employeeSvc),
		Delivery: handler.NewDeliveryHandler(deliverySvc),
		Export:   handler.NewExportHandler(exportSvc),
		Health:   handler.NewHealthHandler(repos.pinger),
	}, router.Options{
		Logger:   zl,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
		CORS:     cfg.CORS,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("store", cfg.Store.Driver),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config, zl *zap.Logger) (*repositories, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		zl.Warn("using in-memory store, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			settings:   store.Settings(),
			employees:  store.Employees(),
			deliveries: store.Deliveries(),
			pinger:     store,
			close:      func() error { return nil },
		}, nil
	}

	if cfg.DB.MigrateOnStart {
		if err := postgres.MigrateUp(&cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		zl.Info("migrations applied")
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &repositories{
		settings:   postgres.NewSettingsRepo(db),
		employees:  postgres.NewEmployeeRepo(db),
		deliveries: postgres.NewDeliveryRepo(db),
		pinger:     db,
		close:      db.Close,
	}, nil
}
