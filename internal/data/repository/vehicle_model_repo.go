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

type VehicleModelRepository interface {
	Create(ctx context.Context, model *entity.VehicleModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error)
	FindByBrandAndName(ctx context.Context, brandID uuid.UUID, name string) (*entity.VehicleModel, error)
	FindByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entity.VehicleModel, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.VehicleModel, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, model *entity.VehicleModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleModelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleModelRepository(db database.PgxIface, log *zap.Logger) VehicleModelRepository {
	return &vehicleModelRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle_model")),
	}
}

func (r *vehicleModelRepository) Create(ctx context.Context, model *entity.VehicleModel) error {
	query := `
		INSERT INTO vehicle_models (id, brand_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, model.ID, model.BrandID, model.Name, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create vehicle model",
			zap.Error(err),
			zap.String("name", model.Name),
			zap.String("brand_id", model.BrandID.String()),
		)
		return fmt.Errorf("create vehicle model %s: %w", model.Name, err)
	}

	return nil
}

func (r *vehicleModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error) {
	query := `SELECT id, brand_id, name, created_at, updated_at FROM vehicle_models WHERE id = $1 AND deleted_at IS NULL`

	var model entity.VehicleModel
	err := r.db.QueryRow(ctx, query, id).Scan(&model.ID, &model.BrandID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle model by ID", zap.Error(err), zap.String("model_id", id.String()))
		return nil, fmt.Errorf("find vehicle model by ID %s: %w", id.String(), err)
	}

	return &model, nil
}

func (r *vehicleModelRepository) FindByBrandAndName(ctx context.Context, brandID uuid.UUID, name string) (*entity.VehicleModel, error) {
	query := `
		SELECT id, brand_id, name, created_at, updated_at
		FROM vehicle_models
		WHERE brand_id = $1 AND LOWER(name) = LOWER($2) AND deleted_at IS NULL
	`

	var model entity.VehicleModel
	err := r.db.QueryRow(ctx, query, brandID, name).Scan(&model.ID, &model.BrandID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle model by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find vehicle model %s: %w", name, err)
	}

	return &model, nil
}

func (r *vehicleModelRepository) FindByBrandID(ctx context.Context, brandID uuid.UUID) ([]*entity.VehicleModel, error) {
	query := `
		SELECT id, brand_id, name, created_at, updated_at
		FROM vehicle_models
		WHERE brand_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, brandID)
	if err != nil {
		r.log.Error("Failed to list models by brand", zap.Error(err), zap.String("brand_id", brandID.String()))
		return nil, fmt.Errorf("list models for brand %s: %w", brandID.String(), err)
	}
	defer rows.Close()

	return scanVehicleModels(rows, r.log)
}

func (r *vehicleModelRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.VehicleModel, error) {
	query := `
		SELECT id, brand_id, name, created_at, updated_at
		FROM vehicle_models
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list vehicle models", zap.Error(err))
		return nil, fmt.Errorf("list vehicle models: %w", err)
	}
	defer rows.Close()

	return scanVehicleModels(rows, r.log)
}

func scanVehicleModels(rows pgx.Rows, log *zap.Logger) ([]*entity.VehicleModel, error) {
	var models []*entity.VehicleModel
	for rows.Next() {
		var model entity.VehicleModel
		if err := rows.Scan(&model.ID, &model.BrandID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
			log.Error("Failed to scan vehicle model row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle model row: %w", err)
		}
		models = append(models, &model)
	}
	return models, nil
}

func (r *vehicleModelRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehicle_models WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count vehicle models", zap.Error(err))
		return 0, fmt.Errorf("count vehicle models: %w", err)
	}
	return count, nil
}

func (r *vehicleModelRepository) Update(ctx context.Context, model *entity.VehicleModel) error {
	query := `UPDATE vehicle_models SET brand_id = $2, name = $3, updated_at = $4 WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, model.ID, model.BrandID, model.Name, model.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update vehicle model", zap.Error(err), zap.String("model_id", model.ID.String()))
		return fmt.Errorf("update vehicle model %s: %w", model.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle model %s not found", model.ID.String())
	}

	return nil
}

func (r *vehicleModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE vehicle_models SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vehicle model", zap.Error(err), zap.String("model_id", id.String()))
		return fmt.Errorf("delete vehicle model %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle model %s not found", id.String())
	}

	return nil
}
