package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

// The server depends on the service layer through these interfaces so that
// handler tests can substitute fakes.

type UserService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type VehicleService interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, id string) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type ComponentService interface {
	Create(ctx context.Context, component *models.Component) (*models.Component, error)
	Get(ctx context.Context, id string) (*models.Component, error)
	List(ctx context.Context) ([]*models.Component, error)
	Update(ctx context.Context, component *models.Component) (*models.Component, error)
	Delete(ctx context.Context, id string) error
}

type MaintenanceService interface {
	Create(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error)
	Get(ctx context.Context, id string) (*models.Maintenance, error)
	List(ctx context.Context) ([]*models.Maintenance, error)
	Update(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error)
	Delete(ctx context.Context, id string) error
}

type ExpiringPartService interface {
	Create(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error)
	Get(ctx context.Context, id string) (*models.ExpiringPart, error)
	List(ctx context.Context) ([]*models.ExpiringPart, error)
	Update(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error)
	Delete(ctx context.Context, id string) error
	MarkReplaced(ctx context.Context, id string) error
}

type HTTPServer struct {
	address       string
	logger        logging.Logger
	users         UserService
	vehicles      VehicleService
	components    ComponentService
	maintenances  MaintenanceService
	expiringParts ExpiringPartService
	jwtSecret     []byte
}

func NewHTTPServer(address string, l logging.Logger, us UserService, vs VehicleService,
	cs ComponentService, ms MaintenanceService, eps ExpiringPartService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:       address,
		logger:        l.With("module", "http_server"),
		users:         us,
		vehicles:      vs,
		components:    cs,
		maintenances:  ms,
		expiringParts: eps,
		jwtSecret:     []byte(secretKey),
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
