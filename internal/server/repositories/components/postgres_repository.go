package components

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/dbx"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, component *models.Component) (*models.Component, error) {

	query :=
		`INSERT INTO components (id, vehicle_id, name, part_number, installed_date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		component.ID, component.VehicleID, component.Name, component.PartNumber,
		component.InstalledDate, component.Notes).Scan(&component.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return component, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Component, error) {
	query :=
		`SELECT id, vehicle_id, name, part_number, installed_date, notes, created_at
		 FROM components
		 WHERE id = $1
		 `

	component := &models.Component{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&component.ID, &component.VehicleID, &component.Name, &component.PartNumber,
		&component.InstalledDate, &component.Notes, &component.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return component, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Component, error) {
	query :=
		`SELECT id, vehicle_id, name, part_number, installed_date, notes, created_at
		 FROM components
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Component{}
	for rows.Next() {
		component := &models.Component{}
		if err := rows.Scan(
			&component.ID, &component.VehicleID, &component.Name, &component.PartNumber,
			&component.InstalledDate, &component.Notes, &component.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, component)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, component *models.Component) (*models.Component, error) {
	query :=
		`UPDATE components
		 SET vehicle_id = $2, name = $3, part_number = $4, installed_date = $5, notes = $6
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		component.ID, component.VehicleID, component.Name, component.PartNumber,
		component.InstalledDate, component.Notes).Scan(&component.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return component, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
