package expiringparts

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error)
	GetByID(ctx context.Context, id string) (*models.ExpiringPart, error)
	List(ctx context.Context) ([]*models.ExpiringPart, error)
	Update(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error)
	Delete(ctx context.Context, id string) error

	// MarkReplaced sets the replaced flag on the part.
	MarkReplaced(ctx context.Context, id string) error
}
