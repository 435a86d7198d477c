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

	httpapi "github.com/fotosdotap/studio/internal/studio/http"
	"github.com/fotosdotap/studio/internal/studio/service"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/blob"
	"github.com/fotosdotap/studio/pkg/jwtx"
	"github.com/fotosdotap/studio/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

var (
	errMissingOperator    = errors.New("app: ADMIN_EMAIL and ADMIN_SENHA are required")
	errMissingTokenSecret = errors.New("app: TOKEN_SECRET is required")
	errUnknownDriver      = errors.New("app: unknown STORAGE_DRIVER")
)

// Application wires the storage backend, the directory, the services and the
// HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	blobs blob.Store
	dir   *store.Directory

	sessionService *service.SessionService
	catalogService *service.CatalogService
	adminService   *service.AdminService
	reconciler     *service.Reconciler

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "studio",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := app.initStorage(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.reconciler.Start()

	app.logger.Info("studio service starting",
		"port", app.cfg.Port,
		"driver", app.cfg.StorageDriver,
		"version", BuildVersion,
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

// Handler exposes the assembled HTTP surface, mainly for end-to-end tests
// that drive the application through an httptest server.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Shutdown gracefully stops the HTTP server, the reconciler and the storage
// backend.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down studio service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.reconciler.Stop()

	if err := app.blobs.Close(); err != nil {
		app.logger.Error("error closing storage", "error", err)
		return err
	}

	app.logger.Info("studio service stopped")
	return nil
}

// initStorage picks and opens the blob backend holding the index, the client
// records and the service-booking documents.
func (app *Application) initStorage() error {
	var (
		blobs blob.Store
		err   error
	)

	switch app.cfg.StorageDriver {
	case "fs":
		blobs, err = blob.NewFS(app.cfg.StorageDir)
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.SQLiteFile)
		blobs, err = blob.NewSQLite(dsn)
	case "redis":
		blobs = blob.NewRedis(app.cfg.RedisAddr, app.cfg.RedisPassword, "studio")
	case "memory":
		blobs = blob.NewMemory()
	}
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", app.cfg.StorageDriver, err)
	}

	app.blobs = blobs
	app.dir = store.NewDirectory(blobs)
	return nil
}

func (app *Application) initServices() {
	signer := &jwtx.Signer{
		Secret: []byte(app.cfg.TokenSecret),
		Issuer: app.cfg.TokenIssuer,
		TTL:    app.cfg.TokenTTL,
	}

	app.sessionService = &service.SessionService{Dir: app.dir}
	app.catalogService = &service.CatalogService{Blobs: app.blobs}
	app.adminService = &service.AdminService{
		Dir:            app.dir,
		Catalog:        app.catalogService,
		Signer:         signer,
		OperatorEmail:  app.cfg.AdminEmail,
		OperatorSecret: app.cfg.AdminSenha,
		TOTPSecret:     app.cfg.AdminTOTPSecret,
	}

	app.reconciler = service.NewReconciler(app.dir, app.logger, app.cfg.ReconcileInterval)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.logger, BuildVersion, app.dir, app.cfg.AllowedOrigins)
	router.Sessions = app.sessionService
	router.Admin = app.adminService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
