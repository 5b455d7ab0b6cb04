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

type OilFilterRepository interface {
	Create(ctx context.Context, filter *entity.OilFilter) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OilFilter, error)
	FindByName(ctx context.Context, name string) (*entity.OilFilter, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.OilFilter, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, filter *entity.OilFilter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type oilFilterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOilFilterRepository(db database.PgxIface, log *zap.Logger) OilFilterRepository {
	return &oilFilterRepository{
		db:  db,
		log: log.With(zap.String("repository", "oil_filter")),
	}
}

func (r *oilFilterRepository) Create(ctx context.Context, filter *entity.OilFilter) error {
	query := `
		INSERT INTO oil_filters (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, filter.ID, filter.Name, filter.Price, filter.CreatedAt, filter.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create oil filter", zap.Error(err), zap.String("name", filter.Name))
		return fmt.Errorf("create oil filter %s: %w", filter.Name, err)
	}

	return nil
}

func (r *oilFilterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OilFilter, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM oil_filters WHERE id = $1 AND deleted_at IS NULL`

	var filter entity.OilFilter
	err := r.db.QueryRow(ctx, query, id).Scan(&filter.ID, &filter.Name, &filter.Price, &filter.CreatedAt, &filter.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find oil filter by ID", zap.Error(err), zap.String("oil_filter_id", id.String()))
		return nil, fmt.Errorf("find oil filter by ID %s: %w", id.String(), err)
	}

	return &filter, nil
}

func (r *oilFilterRepository) FindByName(ctx context.Context, name string) (*entity.OilFilter, error) {
	query := `SELECT id, name, price, created_at, updated_at FROM oil_filters WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL`

	var filter entity.OilFilter
	err := r.db.QueryRow(ctx, query, name).Scan(&filter.ID, &filter.Name, &filter.Price, &filter.CreatedAt, &filter.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find oil filter by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find oil filter by name %s: %w", name, err)
	}

	return &filter, nil
}

func (r *oilFilterRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.OilFilter, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM oil_filters
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list oil filters", zap.Error(err))
		return nil, fmt.Errorf("list oil filters: %w", err)
	}
	defer rows.Close()

	var filters []*entity.OilFilter
	for rows.Next() {
		var filter entity.OilFilter
		if err := rows.Scan(&filter.ID, &filter.Name, &filter.Price, &filter.CreatedAt, &filter.UpdatedAt); err != nil {
			r.log.Error("Failed to scan oil filter row", zap.Error(err))
			return nil, fmt.Errorf("scan oil filter row: %w", err)
		}
		filters = append(filters, &filter)
	}

	return filters, nil
}

func (r *oilFilterRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM oil_filters WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count oil filters", zap.Error(err))
		return 0, fmt.Errorf("count oil filters: %w", err)
	}
	return count, nil
}

func (r *oilFilterRepository) Update(ctx context.Context, filter *entity.OilFilter) error {
	query := `UPDATE oil_filters SET name = $2, price = $3, updated_at = $4 WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, filter.ID, filter.Name, filter.Price, filter.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update oil filter", zap.Error(err), zap.String("oil_filter_id", filter.ID.String()))
		return fmt.Errorf("update oil filter %s: %w", filter.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("oil filter %s not found", filter.ID.String())
	}

	return nil
}

func (r *oilFilterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE oil_filters SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete oil filter", zap.Error(err), zap.String("oil_filter_id", id.String()))
		return fmt.Errorf("delete oil filter %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("oil filter %s not found", id.String())
	}

	return nil
}
