package expiringparts

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

func (r *PostgresRepository) Create(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error) {

	query :=
		`INSERT INTO expiring_parts (id, vehicle_id, name, part_number, expiry_date, replaced, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		part.ID, part.VehicleID, part.Name, part.PartNumber,
		part.ExpiryDate, part.Replaced, part.Notes).Scan(&part.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return part, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ExpiringPart, error) {
	query :=
		`SELECT id, vehicle_id, name, part_number, expiry_date, replaced, notes, created_at
		 FROM expiring_parts
		 WHERE id = $1
		 `

	part := &models.ExpiringPart{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&part.ID, &part.VehicleID, &part.Name, &part.PartNumber,
		&part.ExpiryDate, &part.Replaced, &part.Notes, &part.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return part, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.ExpiringPart, error) {
	query :=
		`SELECT id, vehicle_id, name, part_number, expiry_date, replaced, notes, created_at
		 FROM expiring_parts
		 ORDER BY expiry_date ASC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.ExpiringPart{}
	for rows.Next() {
		part := &models.ExpiringPart{}
		if err := rows.Scan(
			&part.ID, &part.VehicleID, &part.Name, &part.PartNumber,
			&part.ExpiryDate, &part.Replaced, &part.Notes, &part.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, part)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, part *models.ExpiringPart) (*models.ExpiringPart, error) {
	query :=
		`UPDATE expiring_parts
		 SET vehicle_id = $2, name = $3, part_number = $4, expiry_date = $5, replaced = $6, notes = $7
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		part.ID, part.VehicleID, part.Name, part.PartNumber,
		part.ExpiryDate, part.Replaced, part.Notes).Scan(&part.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return part, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expiring_parts WHERE id = $1`, id)
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

func (r *PostgresRepository) MarkReplaced(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE expiring_parts SET replaced = TRUE WHERE id = $1`, id)
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
