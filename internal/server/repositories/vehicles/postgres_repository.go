package vehicles

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

func (r *PostgresRepository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {

	query :=
		`INSERT INTO vehicles (id, name, chassis_number, plate, engine_serial, km_or_hours, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		vehicle.ID, vehicle.Name, vehicle.ChassisNumber, vehicle.Plate,
		vehicle.EngineSerial, vehicle.KmOrHours, vehicle.Notes).
		Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vehicle, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	query :=
		`SELECT id, name, chassis_number, plate, engine_serial, km_or_hours, notes, created_at, updated_at
		 FROM vehicles
		 WHERE id = $1
		 `

	vehicle := &models.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID, &vehicle.Name, &vehicle.ChassisNumber, &vehicle.Plate,
		&vehicle.EngineSerial, &vehicle.KmOrHours, &vehicle.Notes,
		&vehicle.CreatedAt, &vehicle.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vehicle, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	query :=
		`SELECT id, name, chassis_number, plate, engine_serial, km_or_hours, notes, created_at, updated_at
		 FROM vehicles
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Vehicle{}
	for rows.Next() {
		vehicle := &models.Vehicle{}
		if err := rows.Scan(
			&vehicle.ID, &vehicle.Name, &vehicle.ChassisNumber, &vehicle.Plate,
			&vehicle.EngineSerial, &vehicle.KmOrHours, &vehicle.Notes,
			&vehicle.CreatedAt, &vehicle.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	query :=
		`UPDATE vehicles
		 SET name = $2, chassis_number = $3, plate = $4, engine_serial = $5, km_or_hours = $6, notes = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		vehicle.ID, vehicle.Name, vehicle.ChassisNumber, vehicle.Plate,
		vehicle.EngineSerial, vehicle.KmOrHours, vehicle.Notes).
		Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vehicle, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
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

func (r *PostgresRepository) UpdateOdometer(ctx context.Context, id string, kmOrHours int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET km_or_hours = $2, updated_at = now() WHERE id = $1`,
		id, kmOrHours)
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
