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

type BookingAccessoryRepository interface {
	CreateBatchTx(ctx context.Context, tx pgx.Tx, lines []*entity.BookingAccessory) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingAccessory, error)
}

type bookingAccessoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingAccessoryRepository(db database.PgxIface, log *zap.Logger) BookingAccessoryRepository {
	return &bookingAccessoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_accessory")),
	}
}

func (r *bookingAccessoryRepository) CreateBatchTx(ctx context.Context, tx pgx.Tx, lines []*entity.BookingAccessory) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO booking_accessories (id, booking_id, accessory_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(query,
			line.ID,
			line.BookingID,
			line.AccessoryID,
			line.Quantity,
			line.Price,
			line.CreatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range lines {
		if _, err := results.Exec(); err != nil {
			r.log.Error("Failed to create booking accessory lines",
				zap.Error(err),
				zap.Int("lines", len(lines)),
			)
			return fmt.Errorf("create booking accessory lines: %w", err)
		}
	}

	return nil
}

func (r *bookingAccessoryRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingAccessory, error) {
	query := `
		SELECT id, booking_id, accessory_id, quantity, price, created_at
		FROM booking_accessories
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking accessories",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find accessories for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var lines []*entity.BookingAccessory
	for rows.Next() {
		var line entity.BookingAccessory
		err := rows.Scan(&line.ID, &line.BookingID, &line.AccessoryID, &line.Quantity, &line.Price, &line.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan booking accessory row", zap.Error(err))
			return nil, fmt.Errorf("scan booking accessory row: %w", err)
		}
		lines = append(lines, &line)
	}

	return lines, nil
}
