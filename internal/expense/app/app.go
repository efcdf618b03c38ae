package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/spendtrack/internal/expense/blob"
	"github.com/aussiebroadwan/spendtrack/internal/expense/blob/memory"
	"github.com/aussiebroadwan/spendtrack/internal/expense/blob/s3"
	httpapi "github.com/aussiebroadwan/spendtrack/internal/expense/http"
	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store/drivers/sqlite"
	"github.com/aussiebroadwan/spendtrack/pkg/jwtx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the expense service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	blobs    blob.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	// Services
	userService        *service.UserService
	expenseService     *service.ExpenseService
	leaderboardService *service.LeaderboardService
	exportService      *service.ExportService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "expense-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initBlobStore(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("expense service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down expense service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("expense service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initKeys loads the Ed25519 signing key from disk, or generates an
// ephemeral one when no key file is configured. Ephemeral keys invalidate
// all issued tokens on restart.
func (app *Application) initKeys() error {
	var pemKey []byte

	if app.cfg.KeyFile != "" {
		data, err := os.ReadFile(app.cfg.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to read signing key %q: %w", app.cfg.KeyFile, err)
		}
		pemKey = data
		app.logger.Info("loaded signing key", "path", app.cfg.KeyFile)
	} else {
		data, err := jwtx.GenerateEd25519PEM()
		if err != nil {
			return fmt.Errorf("failed to generate signing key: %w", err)
		}
		pemKey = data
		app.logger.Warn("no EXPENSE_KEY_FILE configured, using an ephemeral signing key")
	}

	signer, err := jwtx.NewSignerEdDSA("primary", pemKey)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}

	app.signer = signer
	app.verifier = jwtx.NewVerifierEdDSA(signer.KID(), signer.Public(), app.cfg.Issuer)
	return nil
}

// initBlobStore wires the export destination: S3 when a bucket is
// configured, an in-memory store otherwise (exports are lost on restart).
func (app *Application) initBlobStore() error {
	if app.cfg.ExportBucket == "" {
		app.logger.Warn("no EXPORT_BUCKET configured, exports use in-memory storage")
		app.blobs = memory.NewStore()
		return nil
	}

	blobs, err := s3.NewStore(context.Background(), s3.Config{
		Bucket:    app.cfg.ExportBucket,
		Region:    app.cfg.ExportRegion,
		AccessKey: app.cfg.AccessKey,
		SecretKey: app.cfg.SecretKey,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize export storage: %w", err)
	}

	app.blobs = blobs
	app.logger.Info("export storage ready", "bucket", app.cfg.ExportBucket, "region", app.cfg.ExportRegion)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{
		Store:     app.db,
		Signer:    app.signer,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTTL,
	}
	app.expenseService = &service.ExpenseService{Store: app.db}
	app.leaderboardService = &service.LeaderboardService{Store: app.db}
	app.exportService = &service.ExportService{
		Store: app.db,
		Blobs: app.blobs,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.ExpenseService = app.expenseService
	router.LeaderboardService = app.leaderboardService
	router.ExportService = app.exportService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
