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

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindByPlate(ctx context.Context, plateNumber string) (*entity.Vehicle, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Vehicle, error)

	// Tx variants, same conflict strategy as customers: unique plate_number,
	// insert-on-conflict-do-nothing, re-select on miss.
	FindByPlateTx(ctx context.Context, tx pgx.Tx, plateNumber string) (*entity.Vehicle, error)
	CreateTx(ctx context.Context, tx pgx.Tx, vehicle *entity.Vehicle) (bool, error)
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

const vehicleColumns = `id, customer_id, brand_id, model_id, plate_number, created_at, updated_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(&v.ID, &v.CustomerID, &v.BrandID, &v.ModelID, &v.PlateNumber, &v.CreatedAt, &v.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND deleted_at IS NULL`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) FindByPlate(ctx context.Context, plateNumber string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate_number = $1 AND deleted_at IS NULL`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, plateNumber))
	if err != nil {
		r.log.Error("Failed to find vehicle by plate",
			zap.Error(err),
			zap.String("plate_number", plateNumber),
		)
		return nil, fmt.Errorf("find vehicle by plate %s: %w", plateNumber, err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE customer_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find vehicles by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find vehicles by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		err := rows.Scan(&v.ID, &v.CustomerID, &v.BrandID, &v.ModelID, &v.PlateNumber, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, &v)
	}

	return vehicles, nil
}

func (r *vehicleRepository) FindByPlateTx(ctx context.Context, tx pgx.Tx, plateNumber string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE plate_number = $1 AND deleted_at IS NULL`

	vehicle, err := scanVehicle(tx.QueryRow(ctx, query, plateNumber))
	if err != nil {
		r.log.Error("Failed to find vehicle by plate in tx",
			zap.Error(err),
			zap.String("plate_number", plateNumber),
		)
		return nil, fmt.Errorf("find vehicle by plate %s: %w", plateNumber, err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) CreateTx(ctx context.Context, tx pgx.Tx, vehicle *entity.Vehicle) (bool, error) {
	query := `
		INSERT INTO vehicles (id, customer_id, brand_id, model_id, plate_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (plate_number) DO NOTHING
	`

	tag, err := tx.Exec(ctx, query,
		vehicle.ID,
		vehicle.CustomerID,
		vehicle.BrandID,
		vehicle.ModelID,
		vehicle.PlateNumber,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("plate_number", vehicle.PlateNumber),
		)
		return false, fmt.Errorf("create vehicle %s: %w", vehicle.PlateNumber, err)
	}

	return tag.RowsAffected() > 0, nil
}
