package vehicles

import (
	"context"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error

	// UpdateOdometer sets the vehicle's km_or_hours reading. Used inside the
	// maintenance-create transaction.
	UpdateOdometer(ctx context.Context, id string, kmOrHours int64) error
}
