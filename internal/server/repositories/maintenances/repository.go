package maintenances

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error)
	GetByID(ctx context.Context, id string) (*models.Maintenance, error)
	List(ctx context.Context) ([]*models.Maintenance, error)
	Update(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error)
	Delete(ctx context.Context, id string) error
}
