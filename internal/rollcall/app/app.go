package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/rollcall/internal/rollcall/http"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/syncx"
	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the rollcall service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	// Core dependencies
	db      store.Store
	bearers *bearer.MemoryStore
	engine  *qrtoken.Engine
	syncer  syncx.Adapter

	// Services
	authService         *service.AuthService
	sessionService      *service.SessionService
	ledger              *service.Ledger
	recorder            *service.Recorder
	reportService       *service.ReportService
	syncService         *service.SyncService
	housekeepingService *service.HousekeepingService
	housekeepingRunning bool

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "rollcall",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		now: time.Now,
	}
	app.bearers = bearer.NewMemoryStoreWithClock(app.now)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()
	app.housekeepingRunning = true

	app.logger.Info("rollcall service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"token_window", app.engine.Window(),
		"grace_windows", app.engine.GraceWindows(),
		"sync_mode", app.cfg.SyncMode,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down rollcall service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingRunning {
		app.housekeepingService.Stop()
		app.housekeepingRunning = false
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("rollcall service stopped")
	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore("file:" + app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, _, err := db.SchemaVersion()
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	app.logger.Info("database migrations applied successfully", "schema_version", version)
	return nil
}

// initServices builds the token engine and every business service.
func (app *Application) initServices(ctx context.Context) error {
	secret, err := loadTokenSecret(app.cfg, app.logger)
	if err != nil {
		return err
	}
	app.engine, err = qrtoken.NewEngine(secret, qrtoken.Options{
		Window:       app.cfg.TokenWindow,
		GraceWindows: app.cfg.TokenGraceWindows,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token engine: %w", err)
	}

	pepper, err := loadPepper(app.cfg)
	if err != nil {
		return err
	}

	otpKey := []byte(app.cfg.OTPSecret)
	if len(otpKey) == 0 {
		otpKey = secret
	}

	app.authService = &service.AuthService{
		Store:     app.db,
		Bearers:   app.bearers,
		Hasher:    cryptox.NewArgon2Hasher(pepper),
		OTPSender: service.LogOTPSender{Logger: app.logger},
		OTPKey:    otpKey,
		BearerTTL: app.cfg.BearerTTL,
	}
	if err := app.seedAdmin(ctx); err != nil {
		return err
	}

	app.syncer, err = app.newSyncAdapter(ctx)
	if err != nil {
		return err
	}

	app.sessionService = &service.SessionService{Store: app.db}
	app.ledger = &service.Ledger{Store: app.db, Engine: app.engine}
	app.recorder = &service.Recorder{Store: app.db, Engine: app.engine}
	app.reportService = &service.ReportService{Store: app.db}
	app.syncService = &service.SyncService{Store: app.db, Adapter: app.syncer}

	app.housekeepingService = service.NewHousekeepingService(
		app.bearers,
		app.authService,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

// seedAdmin creates the administrator account on first start.
func (app *Application) seedAdmin(ctx context.Context) error {
	password := app.cfg.AdminPassword
	if password == "" {
		password = defaultAdminPassword
	}

	created, err := app.authService.EnsureDefaultAdmin(ctx, app.cfg.AdminUser, password, app.now())
	if err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}
	if created {
		app.logger.Info("administrator account created", "username", app.cfg.AdminUser)
		if app.cfg.AdminPassword == "" {
			app.logger.Warn("administrator uses the default password, set ADMIN_PASSWORD")
		}
	}
	return nil
}

func (app *Application) newSyncAdapter(ctx context.Context) (syncx.Adapter, error) {
	if app.cfg.SyncMode != SyncModeS3 {
		return syncx.NewLogAdapter(app.logger), nil
	}

	client, err := syncx.NewS3Client(ctx, app.cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize s3 sync: %w", err)
	}
	app.logger.Info("s3 sync enabled", "bucket", app.cfg.S3.Bucket, "endpoint", app.cfg.S3.Endpoint)
	return syncx.NewS3Adapter(client, app.cfg.S3.Bucket, app.logger), nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.db, app.bearers, app.engine, BuildVersion, app.logger)

	router.Clock = app.now
	router.QRImageSize = app.cfg.QRSize
	router.AuthService = app.authService
	router.SessionService = app.sessionService
	router.Ledger = app.ledger
	router.Recorder = app.recorder
	router.ReportService = app.reportService
	router.SyncService = app.syncService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
