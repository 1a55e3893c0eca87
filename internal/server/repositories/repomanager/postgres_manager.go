package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/fleetkeeper/internal/dbx"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/components"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/expiringparts"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/maintenances"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/repositories/vehicles"
)

type PostgresRepositoryManager struct {
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vehicles(db dbx.DBTX) vehicles.Repository {
	return vehicles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Components(db dbx.DBTX) components.Repository {
	return components.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Maintenances(db dbx.DBTX) maintenances.Repository {
	return maintenances.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ExpiringParts(db dbx.DBTX) expiringparts.Repository {
	return expiringparts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
