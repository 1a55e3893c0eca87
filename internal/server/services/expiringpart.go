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

// ExpiringPartService provides CRUD over parts with a shelf life, plus the
// replace operation that flips the replaced flag.
type ExpiringPartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewExpiringPartService(db *sql.DB, m repomanager.RepositoryManager) *ExpiringPartService {
	return &ExpiringPartService{db: db, repomanager: m}
}

func (s *ExpiringPartService) Create(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error) {
	if part.VehicleID == "" || part.Name == "" || part.ExpiryDate == "" {
		return nil, common.ErrorValidation
	}

	if _, err := s.repomanager.Vehicles(s.db).GetByID(ctx, part.VehicleID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorValidation
		}
		return nil, err
	}

	part.ID = uuid.New().String()

	repo := s.repomanager.ExpiringParts(s.db)
	return repo.Create(ctx, part)
}

func (s *ExpiringPartService) Get(ctx context.Context, id string) (*models.ExpiringPart, error) {
	repo := s.repomanager.ExpiringParts(s.db)
	return repo.GetByID(ctx, id)
}

func (s *ExpiringPartService) List(ctx context.Context) ([]*models.ExpiringPart, error) {
	repo := s.repomanager.ExpiringParts(s.db)
	return repo.List(ctx)
}

func (s *ExpiringPartService) Update(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error) {
	if part.ID == "" || part.VehicleID == "" || part.Name == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.ExpiringParts(s.db)
	return repo.Update(ctx, part)
}

func (s *ExpiringPartService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.ExpiringParts(s.db)
	return repo.Delete(ctx, id)
}

func (s *ExpiringPartService) MarkReplaced(ctx context.Context, id string) error {
	repo := s.repomanager.ExpiringParts(s.db)
	return repo.MarkReplaced(ctx, id)
}
