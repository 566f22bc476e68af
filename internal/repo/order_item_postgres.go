package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

type PostgresOrderItemRepository struct {
	db *sql.DB
}

func NewPostgresOrderItemRepository(db *sql.DB) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{db: db}
}

func (r *PostgresOrderItemRepository) GetAll(since *time.Time) ([]models.OrderItem, error) {
	query := `SELECT i.id, i.order_id, i.product_name, COALESCE(i.quantity, 0)
		FROM order_items i`
	args := []any{}
	if since != nil {
		query += ` JOIN orders o ON o.id = i.order_id WHERE o.created_at >= $1`
		args = append(args, *since)
	}
	query += ` ORDER BY i.id`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresOrderItemRepository) Create(it models.OrderItem) (models.OrderItem, error) {
	query := `INSERT INTO order_items (order_id, product_name, quantity) VALUES ($1, $2, $3) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, it.OrderID, it.ProductName, it.Quantity).Scan(&it.ID)
	return it, err
}
