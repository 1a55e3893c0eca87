package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/repomanager"
)

// ComponentService provides CRUD over components installed on vehicles.
type ComponentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewComponentService(db *sql.DB, m repomanager.RepositoryManager) *ComponentService {
	return &ComponentService{db: db, repomanager: m}
}

func (s *ComponentService) Create(ctx context.Context, component *models.Component) (*models.Component, error) {
	if component.VehicleID == "" || component.Name == "" {
		return nil, common.ErrorValidation
	}

	// An unknown vehicle is a client error, not a missing component.
	if _, err := s.repomanager.Vehicles(s.db).GetByID(ctx, component.VehicleID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorValidation
		}
		return nil, err
	}

	component.ID = uuid.New().String()

	repo := s.repomanager.Components(s.db)
	return repo.Create(ctx, component)
}

func (s *ComponentService) Get(ctx context.Context, id string) (*models.Component, error) {
	repo := s.repomanager.Components(s.db)
	return repo.GetByID(ctx, id)
}

func (s *ComponentService) List(ctx context.Context) ([]*models.Component, error) {
	repo := s.repomanager.Components(s.db)
	return repo.List(ctx)
}

func (s *ComponentService) Update(ctx context.Context, component *models.Component) (*models.Component, error) {
	if component.ID == "" || component.VehicleID == "" || component.Name == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Components(s.db)
	return repo.Update(ctx, component)
}

func (s *ComponentService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Components(s.db)
	return repo.Delete(ctx, id)
}
