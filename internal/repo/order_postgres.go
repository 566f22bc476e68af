package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// orderColumns coerces the nullable status/amount columns so rows
// written by older storefront versions scan cleanly.
const orderColumns = `id, COALESCE(customer_name, ''), COALESCE(payment_method, ''),
	COALESCE(total_amount, 0), COALESCE(payment_status, ''), COALESCE(delivery_status, ''),
	created_at, updated_at`

func (r *PostgresOrderRepository) GetAll(f OrderFilter) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if f.Since != nil {
		query += ` WHERE created_at >= $1`
		args = append(args, *f.Since)
	}
	query += ` ORDER BY created_at DESC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.PaymentMethod, &o.TotalAmount,
			&o.PaymentStatus, &o.DeliveryStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(id int) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.CustomerName, &o.PaymentMethod,
		&o.TotalAmount, &o.PaymentStatus, &o.DeliveryStatus, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	query := `INSERT INTO orders (customer_name, payment_method, total_amount, payment_status, delivery_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, o.CustomerName, o.PaymentMethod, o.TotalAmount,
		o.PaymentStatus, o.DeliveryStatus, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	return o, err
}

func (r *PostgresOrderRepository) UpdateStatus(id int, u StatusUpdate) (models.Order, error) {
	sets := ""
	argIdx := 1
	args := []any{}

	if u.PaymentStatus != nil {
		sets += fmt.Sprintf("payment_status = $%d, ", argIdx)
		args = append(args, *u.PaymentStatus)
		argIdx++
	}
	if u.DeliveryStatus != nil {
		sets += fmt.Sprintf("delivery_status = $%d, ", argIdx)
		args = append(args, *u.DeliveryStatus)
		argIdx++
	}
	if sets == "" {
		return r.GetByID(id)
	}

	query := fmt.Sprintf(`UPDATE orders SET %supdated_at = $%d WHERE id = $%d RETURNING `+orderColumns,
		sets, argIdx, argIdx+1)
	args = append(args, time.Now().UTC(), id)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CustomerName, &o.PaymentMethod,
		&o.TotalAmount, &o.PaymentStatus, &o.DeliveryStatus, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}
