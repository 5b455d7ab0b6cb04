package repository

import (
	"context"
	"fmt"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BatteryTypeRepository interface {
	Create(ctx context.Context, battery *entity.BatteryType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BatteryType, error)
	FindByName(ctx context.Context, name string) (*entity.BatteryType, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.BatteryType, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, battery *entity.BatteryType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type batteryTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBatteryTypeRepository(db database.PgxIface, log *zap.Logger) BatteryTypeRepository {
	return &batteryTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "battery_type")),
	}
}

func (r *batteryTypeRepository) Create(ctx context.Context, battery *entity.BatteryType) error {
	query := `
		INSERT INTO battery_types (id, name, capacity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		battery.ID,
		battery.Name,
		battery.Capacity,
		battery.Price,
		battery.CreatedAt,
		battery.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create battery type", zap.Error(err), zap.String("name", battery.Name))
		return fmt.Errorf("create battery type %s: %w", battery.Name, err)
	}

	return nil
}

func (r *batteryTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BatteryType, error) {
	query := `
		SELECT id, name, capacity, price, created_at, updated_at
		FROM battery_types
		WHERE id = $1 AND deleted_at IS NULL
	`

	var battery entity.BatteryType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&battery.ID, &battery.Name, &battery.Capacity, &battery.Price,
		&battery.CreatedAt, &battery.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find battery type by ID", zap.Error(err), zap.String("battery_type_id", id.String()))
		return nil, fmt.Errorf("find battery type by ID %s: %w", id.String(), err)
	}

	return &battery, nil
}

func (r *batteryTypeRepository) FindByName(ctx context.Context, name string) (*entity.BatteryType, error) {
	query := `
		SELECT id, name, capacity, price, created_at, updated_at
		FROM battery_types
		WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL
	`

	var battery entity.BatteryType
	err := r.db.QueryRow(ctx, query, name).Scan(
		&battery.ID, &battery.Name, &battery.Capacity, &battery.Price,
		&battery.CreatedAt, &battery.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find battery type by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find battery type by name %s: %w", name, err)
	}

	return &battery, nil
}

func (r *batteryTypeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.BatteryType, error) {
	query := `
		SELECT id, name, capacity, price, created_at, updated_at
		FROM battery_types
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list battery types", zap.Error(err))
		return nil, fmt.Errorf("list battery types: %w", err)
	}
	defer rows.Close()

	var batteries []*entity.BatteryType
	for rows.Next() {
		var battery entity.BatteryType
		err := rows.Scan(
			&battery.ID, &battery.Name, &battery.Capacity, &battery.Price,
			&battery.CreatedAt, &battery.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan battery type row", zap.Error(err))
			return nil, fmt.Errorf("scan battery type row: %w", err)
		}
		batteries = append(batteries, &battery)
	}

	return batteries, nil
}

func (r *batteryTypeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM battery_types WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count battery types", zap.Error(err))
		return 0, fmt.Errorf("count battery types: %w", err)
	}
	return count, nil
}

func (r *batteryTypeRepository) Update(ctx context.Context, battery *entity.BatteryType) error {
	query := `
		UPDATE battery_types
		SET name = $2, capacity = $3, price = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, battery.ID, battery.Name, battery.Capacity, battery.Price, battery.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update battery type", zap.Error(err), zap.String("battery_type_id", battery.ID.String()))
		return fmt.Errorf("update battery type %s: %w", battery.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("battery type %s not found", battery.ID.String())
	}

	return nil
}

func (r *batteryTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE battery_types SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete battery type", zap.Error(err), zap.String("battery_type_id", id.String()))
		return fmt.Errorf("delete battery type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("battery type %s not found", id.String())
	}

	return nil
}
