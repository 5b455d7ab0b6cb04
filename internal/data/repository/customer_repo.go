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

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByMobile(ctx context.Context, mobile string) (*entity.Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	CountAll(ctx context.Context) (int64, error)

	// Tx variants for the booking write path. CreateTx uses
	// ON CONFLICT (mobile) DO NOTHING so concurrent submissions for the same
	// mobile cannot race into duplicate rows; callers re-select after a
	// conflicting insert.
	FindByMobileTx(ctx context.Context, tx pgx.Tx, mobile string) (*entity.Customer, error)
	CreateTx(ctx context.Context, tx pgx.Tx, customer *entity.Customer) (bool, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `id, name, mobile, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Mobile, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND deleted_at IS NULL`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return customer, nil
}

func (r *customerRepository) FindByMobile(ctx context.Context, mobile string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE mobile = $1 AND deleted_at IS NULL`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, mobile))
	if err != nil {
		r.log.Error("Failed to find customer by mobile",
			zap.Error(err),
			zap.String("mobile", mobile),
		)
		return nil, fmt.Errorf("find customer by mobile %s: %w", mobile, err)
	}

	return customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Mobile, &c.CreatedAt, &c.UpdatedAt); err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	return customers, nil
}

func (r *customerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

func (r *customerRepository) FindByMobileTx(ctx context.Context, tx pgx.Tx, mobile string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE mobile = $1 AND deleted_at IS NULL`

	customer, err := scanCustomer(tx.QueryRow(ctx, query, mobile))
	if err != nil {
		r.log.Error("Failed to find customer by mobile in tx",
			zap.Error(err),
			zap.String("mobile", mobile),
		)
		return nil, fmt.Errorf("find customer by mobile %s: %w", mobile, err)
	}

	return customer, nil
}

func (r *customerRepository) CreateTx(ctx context.Context, tx pgx.Tx, customer *entity.Customer) (bool, error) {
	query := `
		INSERT INTO customers (id, name, mobile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (mobile) DO NOTHING
	`

	tag, err := tx.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Mobile,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("mobile", customer.Mobile),
		)
		return false, fmt.Errorf("create customer %s: %w", customer.Mobile, err)
	}

	return tag.RowsAffected() > 0, nil
}
