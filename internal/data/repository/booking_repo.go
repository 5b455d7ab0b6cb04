package repository

import (
	"context"
	"fmt"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows booking listings; zero values mean "any".
type BookingFilter struct {
	Status      entity.BookingStatus
	ServiceType entity.ServiceType
}

// RevenueRow aggregates completed bookings for the dashboard.
type RevenueRow struct {
	ServiceType entity.ServiceType
	Bookings    int64
	Revenue     float64
}

type DailyRevenueRow struct {
	Day      time.Time
	Bookings int64
	Revenue  float64
}

type BookingRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, filter BookingFilter) (int64, error)

	// UpdateStatus is the ONLY post-creation mutation of a booking.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, updatedBy uuid.UUID) error

	// Dashboard aggregates over completed bookings.
	RevenueByServiceType(ctx context.Context, from, to time.Time) ([]RevenueRow, error)
	RevenueByDay(ctx context.Context, from, to time.Time) ([]DailyRevenueRow, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `
	id, booking_number, customer_id, vehicle_id, service_type, service_date, service_time,
	oil_type_id, oil_quantity, oil_filter_id, battery_type_id,
	labor_cost, discount, subtotal, vat_rate, vat_amount, total_amount,
	memo, status, created_by, updated_by, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.CustomerID, &b.VehicleID, &b.ServiceType, &b.ServiceDate, &b.ServiceTime,
		&b.OilTypeID, &b.OilQuantity, &b.OilFilterID, &b.BatteryTypeID,
		&b.LaborCost, &b.Discount, &b.Subtotal, &b.VATRate, &b.VATAmount, &b.TotalAmount,
		&b.Memo, &b.Status, &b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (
			id, booking_number, customer_id, vehicle_id, service_type, service_date, service_time,
			oil_type_id, oil_quantity, oil_filter_id, battery_type_id,
			labor_cost, discount, subtotal, vat_rate, vat_amount, total_amount,
			memo, status, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := tx.Exec(ctx, query,
		booking.ID,
		booking.BookingNumber,
		booking.CustomerID,
		booking.VehicleID,
		booking.ServiceType,
		booking.ServiceDate,
		booking.ServiceTime,
		booking.OilTypeID,
		booking.OilQuantity,
		booking.OilFilterID,
		booking.BatteryTypeID,
		booking.LaborCost,
		booking.Discount,
		booking.Subtotal,
		booking.VATRate,
		booking.VATAmount,
		booking.TotalAmount,
		booking.Memo,
		booking.Status,
		booking.CreatedBy,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_number", booking.BookingNumber),
			zap.String("customer_id", booking.CustomerID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingNumber, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR status = $1::text)
		  AND ($2 = '' OR service_type = $2::text)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, string(filter.Status), string(filter.ServiceType), limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("status", string(filter.Status)),
			zap.String("service_type", string(filter.ServiceType)),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		err := rows.Scan(
			&b.ID, &b.BookingNumber, &b.CustomerID, &b.VehicleID, &b.ServiceType, &b.ServiceDate, &b.ServiceTime,
			&b.OilTypeID, &b.OilQuantity, &b.OilFilterID, &b.BatteryTypeID,
			&b.LaborCost, &b.Discount, &b.Subtotal, &b.VATRate, &b.VATAmount, &b.TotalAmount,
			&b.Memo, &b.Status, &b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context, filter BookingFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE ($1 = '' OR status = $1::text)
		  AND ($2 = '' OR service_type = $2::text)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, string(filter.Status), string(filter.ServiceType)).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, updatedBy uuid.UUID) error {
	query := `UPDATE bookings SET status = $2, updated_by = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status, updatedBy)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) RevenueByServiceType(ctx context.Context, from, to time.Time) ([]RevenueRow, error) {
	query := `
		SELECT service_type, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE status = 'completed'
		  AND service_date >= $1 AND service_date <= $2
		GROUP BY service_type
		ORDER BY service_type
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to aggregate revenue by service type", zap.Error(err))
		return nil, fmt.Errorf("revenue by service type: %w", err)
	}
	defer rows.Close()

	var result []RevenueRow
	for rows.Next() {
		var row RevenueRow
		if err := rows.Scan(&row.ServiceType, &row.Bookings, &row.Revenue); err != nil {
			r.log.Error("Failed to scan revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *bookingRepository) RevenueByDay(ctx context.Context, from, to time.Time) ([]DailyRevenueRow, error) {
	query := `
		SELECT service_date::date, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE status = 'completed'
		  AND service_date >= $1 AND service_date <= $2
		GROUP BY service_date::date
		ORDER BY service_date::date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to aggregate revenue by day", zap.Error(err))
		return nil, fmt.Errorf("revenue by day: %w", err)
	}
	defer rows.Close()

	var result []DailyRevenueRow
	for rows.Next() {
		var row DailyRevenueRow
		if err := rows.Scan(&row.Day, &row.Bookings, &row.Revenue); err != nil {
			r.log.Error("Failed to scan daily revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan daily revenue row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}
