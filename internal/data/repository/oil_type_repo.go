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

type OilTypeRepository interface {
	Create(ctx context.Context, oilType *entity.OilType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OilType, error)
	FindByName(ctx context.Context, name string) (*entity.OilType, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.OilType, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, oilType *entity.OilType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type oilTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOilTypeRepository(db database.PgxIface, log *zap.Logger) OilTypeRepository {
	return &oilTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "oil_type")),
	}
}

const oilTypeColumns = `
	id, name, price_4l, price_1l, price_per_liter,
	package_4l_available, package_1l_available, bulk_available,
	created_at, updated_at`

func scanOilType(row pgx.Row) (*entity.OilType, error) {
	var ot entity.OilType
	err := row.Scan(
		&ot.ID, &ot.Name, &ot.Price4L, &ot.Price1L, &ot.PricePerLiter,
		&ot.Has4L, &ot.Has1L, &ot.HasBulk,
		&ot.CreatedAt, &ot.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ot, nil
}

func (r *oilTypeRepository) Create(ctx context.Context, oilType *entity.OilType) error {
	query := `
		INSERT INTO oil_types (
			id, name, price_4l, price_1l, price_per_liter,
			package_4l_available, package_1l_available, bulk_available,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		oilType.ID,
		oilType.Name,
		oilType.Price4L,
		oilType.Price1L,
		oilType.PricePerLiter,
		oilType.Has4L,
		oilType.Has1L,
		oilType.HasBulk,
		oilType.CreatedAt,
		oilType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create oil type", zap.Error(err), zap.String("name", oilType.Name))
		return fmt.Errorf("create oil type %s: %w", oilType.Name, err)
	}

	return nil
}

func (r *oilTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OilType, error) {
	query := `SELECT ` + oilTypeColumns + ` FROM oil_types WHERE id = $1 AND deleted_at IS NULL`

	oilType, err := scanOilType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find oil type by ID", zap.Error(err), zap.String("oil_type_id", id.String()))
		return nil, fmt.Errorf("find oil type by ID %s: %w", id.String(), err)
	}

	return oilType, nil
}

func (r *oilTypeRepository) FindByName(ctx context.Context, name string) (*entity.OilType, error) {
	query := `SELECT ` + oilTypeColumns + ` FROM oil_types WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL`

	oilType, err := scanOilType(r.db.QueryRow(ctx, query, name))
	if err != nil {
		r.log.Error("Failed to find oil type by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find oil type by name %s: %w", name, err)
	}

	return oilType, nil
}

func (r *oilTypeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.OilType, error) {
	query := `
		SELECT ` + oilTypeColumns + `
		FROM oil_types
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list oil types", zap.Error(err))
		return nil, fmt.Errorf("list oil types: %w", err)
	}
	defer rows.Close()

	var oilTypes []*entity.OilType
	for rows.Next() {
		var ot entity.OilType
		err := rows.Scan(
			&ot.ID, &ot.Name, &ot.Price4L, &ot.Price1L, &ot.PricePerLiter,
			&ot.Has4L, &ot.Has1L, &ot.HasBulk,
			&ot.CreatedAt, &ot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan oil type row", zap.Error(err))
			return nil, fmt.Errorf("scan oil type row: %w", err)
		}
		oilTypes = append(oilTypes, &ot)
	}

	return oilTypes, nil
}

func (r *oilTypeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM oil_types WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count oil types", zap.Error(err))
		return 0, fmt.Errorf("count oil types: %w", err)
	}
	return count, nil
}

func (r *oilTypeRepository) Update(ctx context.Context, oilType *entity.OilType) error {
	query := `
		UPDATE oil_types
		SET name = $2, price_4l = $3, price_1l = $4, price_per_liter = $5,
		    package_4l_available = $6, package_1l_available = $7, bulk_available = $8,
		    updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		oilType.ID,
		oilType.Name,
		oilType.Price4L,
		oilType.Price1L,
		oilType.PricePerLiter,
		oilType.Has4L,
		oilType.Has1L,
		oilType.HasBulk,
		oilType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update oil type", zap.Error(err), zap.String("oil_type_id", oilType.ID.String()))
		return fmt.Errorf("update oil type %s: %w", oilType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("oil type %s not found", oilType.ID.String())
	}

	return nil
}

func (r *oilTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE oil_types SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete oil type", zap.Error(err), zap.String("oil_type_id", id.String()))
		return fmt.Errorf("delete oil type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("oil type %s not found", id.String())
	}

	return nil
}
