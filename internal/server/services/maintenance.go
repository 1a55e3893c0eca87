package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/dbx"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/repomanager"
)

// MaintenanceService provides CRUD over maintenance records. Creating a
// record with a higher odometer reading than the vehicle's current one
// advances the vehicle in the same transaction.
type MaintenanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMaintenanceService(db *sql.DB, m repomanager.RepositoryManager) *MaintenanceService {
	return &MaintenanceService{db: db, repomanager: m}
}

func (s *MaintenanceService) Create(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error) {
	if maintenance.VehicleID == "" || maintenance.Type == "" {
		return nil, common.ErrorValidation
	}
	maintenance.ID = uuid.New().String()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vehicleRepo := s.repomanager.Vehicles(tx)
		vehicle, err := vehicleRepo.GetByID(ctx, maintenance.VehicleID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorValidation
			}
			return err
		}

		repo := s.repomanager.Maintenances(tx)
		if _, err := repo.Create(ctx, maintenance); err != nil {
			return err
		}

		if maintenance.KmOrHours > vehicle.KmOrHours {
			if err := vehicleRepo.UpdateOdometer(ctx, vehicle.ID, maintenance.KmOrHours); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return maintenance, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*models.Maintenance, error) {
	repo := s.repomanager.Maintenances(s.db)
	return repo.GetByID(ctx, id)
}

func (s *MaintenanceService) List(ctx context.Context) ([]*models.Maintenance, error) {
	repo := s.repomanager.Maintenances(s.db)
	return repo.List(ctx)
}

func (s *MaintenanceService) Update(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error) {
	if maintenance.ID == "" || maintenance.VehicleID == "" || maintenance.Type == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Maintenances(s.db)
	return repo.Update(ctx, maintenance)
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Maintenances(s.db)
	return repo.Delete(ctx, id)
}
