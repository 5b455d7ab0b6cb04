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

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	FindByName(ctx context.Context, name string) (*entity.Brand, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type brandRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBrandRepository(db database.PgxIface, log *zap.Logger) BrandRepository {
	return &brandRepository{
		db:  db,
		log: log.With(zap.String("repository", "brand")),
	}
}

func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	query := `
		INSERT INTO brands (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, brand.ID, brand.Name, brand.CreatedAt, brand.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create brand", zap.Error(err), zap.String("name", brand.Name))
		return fmt.Errorf("create brand %s: %w", brand.Name, err)
	}

	return nil
}

func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	query := `SELECT id, name, created_at, updated_at FROM brands WHERE id = $1 AND deleted_at IS NULL`

	var brand entity.Brand
	err := r.db.QueryRow(ctx, query, id).Scan(&brand.ID, &brand.Name, &brand.CreatedAt, &brand.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find brand by ID", zap.Error(err), zap.String("brand_id", id.String()))
		return nil, fmt.Errorf("find brand by ID %s: %w", id.String(), err)
	}

	return &brand, nil
}

func (r *brandRepository) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	query := `SELECT id, name, created_at, updated_at FROM brands WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL`

	var brand entity.Brand
	err := r.db.QueryRow(ctx, query, name).Scan(&brand.ID, &brand.Name, &brand.CreatedAt, &brand.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find brand by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find brand by name %s: %w", name, err)
	}

	return &brand, nil
}

func (r *brandRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM brands
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list brands", zap.Error(err))
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []*entity.Brand
	for rows.Next() {
		var brand entity.Brand
		if err := rows.Scan(&brand.ID, &brand.Name, &brand.CreatedAt, &brand.UpdatedAt); err != nil {
			r.log.Error("Failed to scan brand row", zap.Error(err))
			return nil, fmt.Errorf("scan brand row: %w", err)
		}
		brands = append(brands, &brand)
	}

	return brands, nil
}

func (r *brandRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM brands WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count brands", zap.Error(err))
		return 0, fmt.Errorf("count brands: %w", err)
	}
	return count, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	query := `UPDATE brands SET name = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, brand.ID, brand.Name, brand.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update brand", zap.Error(err), zap.String("brand_id", brand.ID.String()))
		return fmt.Errorf("update brand %s: %w", brand.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand %s not found", brand.ID.String())
	}

	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE brands SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete brand", zap.Error(err), zap.String("brand_id", id.String()))
		return fmt.Errorf("delete brand %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("brand %s not found", id.String())
	}

	return nil
}
