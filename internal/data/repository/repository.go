package repository

import (
	"context"
	"fmt"

	"garage-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	DB database.PgxIface

	User             UserRepository
	Session          SessionRepository
	Customer         CustomerRepository
	Vehicle          VehicleRepository
	Brand            BrandRepository
	VehicleModel     VehicleModelRepository
	OilType          OilTypeRepository
	OilFilter        OilFilterRepository
	BatteryType      BatteryTypeRepository
	Accessory        AccessoryRepository
	Booking          BookingRepository
	BookingAccessory BookingAccessoryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:               db,
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Customer:         NewCustomerRepository(db, log),
		Vehicle:          NewVehicleRepository(db, log),
		Brand:            NewBrandRepository(db, log),
		VehicleModel:     NewVehicleModelRepository(db, log),
		OilType:          NewOilTypeRepository(db, log),
		OilFilter:        NewOilFilterRepository(db, log),
		BatteryType:      NewBatteryTypeRepository(db, log),
		Accessory:        NewAccessoryRepository(db, log),
		Booking:          NewBookingRepository(db, log),
		BookingAccessory: NewBookingAccessoryRepository(db, log),
	}
}

// InTx runs fn inside one transaction. Any error rolls the whole thing back;
// the booking write path depends on this being all-or-nothing.
func (r *Repository) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
