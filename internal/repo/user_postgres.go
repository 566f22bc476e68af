package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByEmail(email string) (models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var u models.StaffUser
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, COALESCE(phone, ''), role, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.StaffUser{}, ErrUserNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) GetAll() ([]models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, full_name, COALESCE(phone, ''), role, created_at, updated_at
		 FROM users ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.StaffUser
	for rows.Next() {
		var u models.StaffUser
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) Create(u models.StaffUser) (models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, full_name, phone, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		u.Email, u.FullName, u.Phone, u.Role, u.PasswordHash, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)

	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.StaffUser{}, ErrDuplicateEmail
	}
	return u, err
}

func (r *PostgresUserRepository) UpdatePassword(id int, passwordHash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
