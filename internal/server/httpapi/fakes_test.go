package httpapi

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeUserService struct {
	registerOut *models.User
	registerErr error

	loginToken string
	loginUser  *models.User
	loginErr   error
}

func (f *fakeUserService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

type fakeVehicleService struct {
	out    *models.Vehicle
	list   []*models.Vehicle
	err    error
	delErr error

	deleted []string
}

func (f *fakeVehicleService) Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.out != nil {
		return f.out, nil
	}
	return v, nil
}

func (f *fakeVehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeVehicleService) List(ctx context.Context) ([]*models.Vehicle, error) {
	return f.list, f.err
}

func (f *fakeVehicleService) Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return v, nil
}

func (f *fakeVehicleService) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeComponentService struct {
	out  *models.Component
	list []*models.Component
	err  error
}

func (f *fakeComponentService) Create(ctx context.Context, c *models.Component) (*models.Component, error) {
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func (f *fakeComponentService) Get(ctx context.Context, id string) (*models.Component, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeComponentService) List(ctx context.Context) ([]*models.Component, error) {
	return f.list, f.err
}

func (f *fakeComponentService) Update(ctx context.Context, c *models.Component) (*models.Component, error) {
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func (f *fakeComponentService) Delete(ctx context.Context, id string) error { return f.err }

type fakeMaintenanceService struct {
	out  *models.Maintenance
	list []*models.Maintenance
	err  error
}

func (f *fakeMaintenanceService) Create(ctx context.Context, m *models.Maintenance) (*models.Maintenance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return m, nil
}

func (f *fakeMaintenanceService) Get(ctx context.Context, id string) (*models.Maintenance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeMaintenanceService) List(ctx context.Context) ([]*models.Maintenance, error) {
	return f.list, f.err
}

func (f *fakeMaintenanceService) Update(ctx context.Context, m *models.Maintenance) (*models.Maintenance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return m, nil
}

func (f *fakeMaintenanceService) Delete(ctx context.Context, id string) error { return f.err }

type fakeExpiringPartService struct {
	out         *models.ExpiringPart
	list        []*models.ExpiringPart
	err         error
	replacedErr error

	replacedIDs []string
}

func (f *fakeExpiringPartService) Create(ctx context.Context, p *models.ExpiringPart) (*models.ExpiringPart, error) {
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

func (f *fakeExpiringPartService) Get(ctx context.Context, id string) (*models.ExpiringPart, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeExpiringPartService) List(ctx context.Context) ([]*models.ExpiringPart, error) {
	return f.list, f.err
}

func (f *fakeExpiringPartService) Update(ctx context.Context, p *models.ExpiringPart) (*models.ExpiringPart, error) {
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

func (f *fakeExpiringPartService) Delete(ctx context.Context, id string) error { return f.err }

func (f *fakeExpiringPartService) MarkReplaced(ctx context.Context, id string) error {
	if f.replacedErr != nil {
		return f.replacedErr
	}
	f.replacedIDs = append(f.replacedIDs, id)
	return nil
}
