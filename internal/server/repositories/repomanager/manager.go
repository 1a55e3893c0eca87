// Package repomanager bundles repository construction so services depend on
// one factory instead of every repository package, and can hand repositories
// either the pooled DB handle or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fleetkeeper/internal/dbx"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/components"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/expiringparts"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/maintenances"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/vehicles"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Vehicles(db dbx.DBTX) vehicles.Repository
	Components(db dbx.DBTX) components.Repository
	Maintenances(db dbx.DBTX) maintenances.Repository
	ExpiringParts(db dbx.DBTX) expiringparts.Repository
}
