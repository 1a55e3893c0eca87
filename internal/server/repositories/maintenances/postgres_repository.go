package maintenances

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

func (r *PostgresRepository) Create(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error) {

	query :=
		`INSERT INTO maintenances (id, vehicle_id, type, date, km_or_hours, cost, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		maintenance.ID, maintenance.VehicleID, maintenance.Type, maintenance.Date,
		maintenance.KmOrHours, maintenance.Cost, maintenance.Notes).Scan(&maintenance.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return maintenance, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Maintenance, error) {
	query :=
		`SELECT m.id, m.vehicle_id, m.type, m.date, m.km_or_hours, m.cost, m.notes, m.created_at, COALESCE(v.name, '')
		 FROM maintenances m
		 LEFT JOIN vehicles v ON v.id = m.vehicle_id
		 WHERE m.id = $1
		 `

	maintenance := &models.Maintenance{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&maintenance.ID, &maintenance.VehicleID, &maintenance.Type, &maintenance.Date,
		&maintenance.KmOrHours, &maintenance.Cost, &maintenance.Notes,
		&maintenance.CreatedAt, &maintenance.VehicleName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return maintenance, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Maintenance, error) {
	query :=
		`SELECT m.id, m.vehicle_id, m.type, m.date, m.km_or_hours, m.cost, m.notes, m.created_at, COALESCE(v.name, '')
		 FROM maintenances m
		 LEFT JOIN vehicles v ON v.id = m.vehicle_id
		 ORDER BY m.date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Maintenance{}
	for rows.Next() {
		maintenance := &models.Maintenance{}
		if err := rows.Scan(
			&maintenance.ID, &maintenance.VehicleID, &maintenance.Type, &maintenance.Date,
			&maintenance.KmOrHours, &maintenance.Cost, &maintenance.Notes,
			&maintenance.CreatedAt, &maintenance.VehicleName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, maintenance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, maintenance *models.Maintenance) (*models.Maintenance, error) {
	query :=
		`UPDATE maintenances
		 SET vehicle_id = $2, type = $3, date = $4, km_or_hours = $5, cost = $6, notes = $7
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		maintenance.ID, maintenance.VehicleID, maintenance.Type, maintenance.Date,
		maintenance.KmOrHours, maintenance.Cost, maintenance.Notes).Scan(&maintenance.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return maintenance, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
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
