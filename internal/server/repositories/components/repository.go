package components

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, component *models.Component) (*models.Component, error)
	GetByID(ctx context.Context, id string) (*models.Component, error)
	List(ctx context.Context) ([]*models.Component, error)
	Update(ctx context.Context, component *models.Component) (*models.Component, error)
	Delete(ctx context.Context, id string) error
}
