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

type AccessoryRepository interface {
	Create(ctx context.Context, accessory *entity.Accessory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error)
	FindByName(ctx context.Context, name string) (*entity.Accessory, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Accessory, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, accessory *entity.Accessory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accessoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccessoryRepository(db database.PgxIface, log *zap.Logger) AccessoryRepository {
	return &accessoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "accessory")),
	}
}

func (r *accessoryRepository) Create(ctx context.Context, accessory *entity.Accessory) error {
	query := `
		INSERT INTO accessories (id, name, price, quantity_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		accessory.ID,
		accessory.Name,
		accessory.Price,
		accessory.QuantityAvailable,
		accessory.CreatedAt,
		accessory.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create accessory", zap.Error(err), zap.String("name", accessory.Name))
		return fmt.Errorf("create accessory %s: %w", accessory.Name, err)
	}

	return nil
}

func (r *accessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Accessory, error) {
	query := `
		SELECT id, name, price, quantity_available, created_at, updated_at
		FROM accessories
		WHERE id = $1 AND deleted_at IS NULL
	`

	var accessory entity.Accessory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&accessory.ID, &accessory.Name, &accessory.Price, &accessory.QuantityAvailable,
		&accessory.CreatedAt, &accessory.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find accessory by ID", zap.Error(err), zap.String("accessory_id", id.String()))
		return nil, fmt.Errorf("find accessory by ID %s: %w", id.String(), err)
	}

	return &accessory, nil
}

func (r *accessoryRepository) FindByName(ctx context.Context, name string) (*entity.Accessory, error) {
	query := `
		SELECT id, name, price, quantity_available, created_at, updated_at
		FROM accessories
		WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL
	`

	var accessory entity.Accessory
	err := r.db.QueryRow(ctx, query, name).Scan(
		&accessory.ID, &accessory.Name, &accessory.Price, &accessory.QuantityAvailable,
		&accessory.CreatedAt, &accessory.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find accessory by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find accessory by name %s: %w", name, err)
	}

	return &accessory, nil
}

func (r *accessoryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Accessory, error) {
	query := `
		SELECT id, name, price, quantity_available, created_at, updated_at
		FROM accessories
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list accessories", zap.Error(err))
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	defer rows.Close()

	var accessories []*entity.Accessory
	for rows.Next() {
		var accessory entity.Accessory
		err := rows.Scan(
			&accessory.ID, &accessory.Name, &accessory.Price, &accessory.QuantityAvailable,
			&accessory.CreatedAt, &accessory.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan accessory row", zap.Error(err))
			return nil, fmt.Errorf("scan accessory row: %w", err)
		}
		accessories = append(accessories, &accessory)
	}

	return accessories, nil
}

func (r *accessoryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accessories WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count accessories", zap.Error(err))
		return 0, fmt.Errorf("count accessories: %w", err)
	}
	return count, nil
}

func (r *accessoryRepository) Update(ctx context.Context, accessory *entity.Accessory) error {
	query := `
		UPDATE accessories
		SET name = $2, price = $3, quantity_available = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		accessory.ID,
		accessory.Name,
		accessory.Price,
		accessory.QuantityAvailable,
		accessory.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update accessory", zap.Error(err), zap.String("accessory_id", accessory.ID.String()))
		return fmt.Errorf("update accessory %s: %w", accessory.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accessory %s not found", accessory.ID.String())
	}

	return nil
}

func (r *accessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE accessories SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete accessory", zap.Error(err), zap.String("accessory_id", id.String()))
		return fmt.Errorf("delete accessory %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("accessory %s not found", id.String())
	}

	return nil
}
