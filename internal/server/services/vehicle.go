package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/repomanager"
)

// VehicleService provides CRUD over vehicles.
type VehicleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVehicleService(db *sql.DB, m repomanager.RepositoryManager) *VehicleService {
	return &VehicleService{db: db, repomanager: m}
}

func (s *VehicleService) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.Name == "" {
		return nil, common.ErrorValidation
	}
	vehicle.ID = uuid.New().String()

	repo := s.repomanager.Vehicles(s.db)
	return repo.Create(ctx, vehicle)
}

func (s *VehicleService) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	repo := s.repomanager.Vehicles(s.db)
	return repo.GetByID(ctx, id)
}

func (s *VehicleService) List(ctx context.Context) ([]*models.Vehicle, error) {
	repo := s.repomanager.Vehicles(s.db)
	return repo.List(ctx)
}

func (s *VehicleService) Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.ID == "" || vehicle.Name == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Vehicles(s.db)
	return repo.Update(ctx, vehicle)
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Vehicles(s.db)
	return repo.Delete(ctx, id)
}
