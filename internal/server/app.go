// Package server initializes and runs the fleet records backend.
// It opens the database, runs migrations, bootstraps the admin account,
// and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/config"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/services"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	userService         *services.UserService
	vehicleService      *services.VehicleService
	componentService    *services.ComponentService
	maintenanceService  *services.MaintenanceService
	expiringPartService *services.ExpiringPartService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &App{
		config:              cfg,
		logger:              logger,
		db:                  db,
		userService:         services.NewUserService(db, rm, cfg),
		vehicleService:      services.NewVehicleService(db, rm),
		componentService:    services.NewComponentService(db, rm),
		maintenanceService:  services.NewMaintenanceService(db, rm),
		expiringPartService: services.NewExpiringPartService(db, rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// bootstrapAdmin makes sure the well-known admin account exists so that a
// fresh install can log in and manage records.
func (app *App) bootstrapAdmin(ctx context.Context) error {
	created, err := app.userService.EnsureAdmin(ctx, app.config.AdminEmail, app.config.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		app.logger.Warn(ctx, "Created default admin account, change its password",
			"email", app.config.AdminEmail)
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.vehicleService, app.componentService,
		app.maintenanceService, app.expiringPartService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.bootstrapAdmin(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
