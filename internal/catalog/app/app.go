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

	httpapi "github.com/aussiebroadwan/democat/internal/catalog/http"
	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application is the catalog admin service with its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger
	clock  service.Clock

	db         *sqlite.Store
	keyManager *jwtx.KeyManager
	hasher     *cryptox.PasswordHasher

	authService         *service.AuthService
	bootstrapService    *service.BootstrapService
	adminService        *service.AdminService
	clientService       *service.ClientService
	requestService      *service.RequestService
	demoService         *service.DemoService
	activityService     *service.ActivityService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "catalog-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	app.clock = service.Clock{Location: loc}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := InitKeys(context.Background(), cfg, app.db, app.logger, app.clock.Now)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()
	app.initHTTP(loc)

	return app, nil
}

// Handler exposes the configured router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("catalog service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"timezone", app.cfg.Timezone,
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
			app.housekeepingService.Stop()
			_ = app.db.Close()
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

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down catalog service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("catalog service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(fmt.Sprintf("file:%s", app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Hasher:     app.hasher,
		KeyManager: app.keyManager,
		Issuer:     app.cfg.Issuer,
		Audience:   []string{app.cfg.Audience},
		AccessTTL:  app.cfg.AccessTokenTTL,
		Clock:      app.clock,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:  app.db,
		Hasher: app.hasher,
		Token:  app.cfg.BootstrapToken,
		Clock:  app.clock,
	}
	app.adminService = &service.AdminService{Store: app.db, Hasher: app.hasher, Clock: app.clock}
	app.clientService = &service.ClientService{Store: app.db, Hasher: app.hasher, Clock: app.clock}
	app.requestService = &service.RequestService{Store: app.db, Clock: app.clock}
	app.demoService = service.NewDemoService(app.db, app.clock, app.cfg.DemoCacheSize, app.cfg.DemoCacheTTL)
	app.activityService = &service.ActivityService{Store: app.db, Clock: app.clock}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.ActivityRetention,
		app.clock,
	)
	app.housekeepingService.KeyGrace = app.cfg.KeyGracePeriod

	if app.cfg.BootstrapToken == "" {
		app.logger.Info("bootstrap endpoint disabled (BOOTSTRAP_TOKEN not set)")
	}
}

func (app *Application) initHTTP(loc *time.Location) {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)
	router.Location = loc

	router.AuthService = app.authService
	router.BootstrapService = app.bootstrapService
	router.AdminService = app.adminService
	router.ClientService = app.clientService
	router.RequestService = app.requestService
	router.DemoService = app.demoService
	router.ActivityService = app.activityService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
