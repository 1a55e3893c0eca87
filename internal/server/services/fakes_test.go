package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fleetkeeper/internal/dbx"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
	componentsrepo "github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/components"
	expiringpartsrepo "github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/expiringparts"
	maintenancesrepo "github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/maintenances"
	usersrepo "github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/users"
	vehiclesrepo "github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/vehicles"
)

// --- fakes shared by the service tests ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	created []*models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeVehiclesRepo struct {
	getOut *models.Vehicle
	getErr error

	createErr error
	listOut   []*models.Vehicle
	listErr   error
	updateErr error
	deleteErr error

	odometerErr   error
	odometerCalls []int64
}

func (f *fakeVehiclesRepo) Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return v, nil
}

func (f *fakeVehiclesRepo) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeVehiclesRepo) List(ctx context.Context) ([]*models.Vehicle, error) {
	return f.listOut, f.listErr
}

func (f *fakeVehiclesRepo) Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return v, nil
}

func (f *fakeVehiclesRepo) Delete(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakeVehiclesRepo) UpdateOdometer(ctx context.Context, id string, kmOrHours int64) error {
	if f.odometerErr != nil {
		return f.odometerErr
	}
	f.odometerCalls = append(f.odometerCalls, kmOrHours)
	return nil
}

type fakeMaintenancesRepo struct {
	createErr error
	getOut    *models.Maintenance
	getErr    error
	listOut   []*models.Maintenance
	listErr   error
	updateErr error
	deleteErr error

	created []*models.Maintenance
}

func (f *fakeMaintenancesRepo) Create(ctx context.Context, m *models.Maintenance) (*models.Maintenance, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, m)
	return m, nil
}

func (f *fakeMaintenancesRepo) GetByID(ctx context.Context, id string) (*models.Maintenance, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeMaintenancesRepo) List(ctx context.Context) ([]*models.Maintenance, error) {
	return f.listOut, f.listErr
}

func (f *fakeMaintenancesRepo) Update(ctx context.Context, m *models.Maintenance) (*models.Maintenance, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return m, nil
}

func (f *fakeMaintenancesRepo) Delete(ctx context.Context, id string) error { return f.deleteErr }

type fakeComponentsRepo struct {
	createErr error
	getOut    *models.Component
	getErr    error
	listOut   []*models.Component
	listErr   error
	updateErr error
	deleteErr error
}

func (f *fakeComponentsRepo) Create(ctx context.Context, c *models.Component) (*models.Component, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return c, nil
}

func (f *fakeComponentsRepo) GetByID(ctx context.Context, id string) (*models.Component, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeComponentsRepo) List(ctx context.Context) ([]*models.Component, error) {
	return f.listOut, f.listErr
}

func (f *fakeComponentsRepo) Update(ctx context.Context, c *models.Component) (*models.Component, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return c, nil
}

func (f *fakeComponentsRepo) Delete(ctx context.Context, id string) error { return f.deleteErr }

type fakeExpiringPartsRepo struct {
	createErr   error
	getOut      *models.ExpiringPart
	getErr      error
	listOut     []*models.ExpiringPart
	listErr     error
	updateErr   error
	deleteErr   error
	replacedErr error

	replacedIDs []string
}

func (f *fakeExpiringPartsRepo) Create(ctx context.Context, p *models.ExpiringPart) (*models.ExpiringPart, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return p, nil
}

func (f *fakeExpiringPartsRepo) GetByID(ctx context.Context, id string) (*models.ExpiringPart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeExpiringPartsRepo) List(ctx context.Context) ([]*models.ExpiringPart, error) {
	return f.listOut, f.listErr
}

func (f *fakeExpiringPartsRepo) Update(ctx context.Context, p *models.ExpiringPart) (*models.ExpiringPart, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return p, nil
}

func (f *fakeExpiringPartsRepo) Delete(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakeExpiringPartsRepo) MarkReplaced(ctx context.Context, id string) error {
	if f.replacedErr != nil {
		return f.replacedErr
	}
	f.replacedIDs = append(f.replacedIDs, id)
	return nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	v  *fakeVehiclesRepo
	c  *fakeComponentsRepo
	m  *fakeMaintenancesRepo
	ep *fakeExpiringPartsRepo
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return f.u }

func (f *fakeRepoManager) Vehicles(db dbx.DBTX) vehiclesrepo.Repository { return f.v }

func (f *fakeRepoManager) Components(db dbx.DBTX) componentsrepo.Repository { return f.c }

func (f *fakeRepoManager) Maintenances(db dbx.DBTX) maintenancesrepo.Repository { return f.m }

func (f *fakeRepoManager) ExpiringParts(db dbx.DBTX) expiringpartsrepo.Repository { return f.ep }
