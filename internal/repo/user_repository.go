package repo

import "github.com/wearapparel/admin-console/internal/models"

// UserRepository defines staff account operations.
type UserRepository interface {
	GetByEmail(email string) (models.StaffUser, error)
	GetAll() ([]models.StaffUser, error)
	Create(u models.StaffUser) (models.StaffUser, error)
	UpdatePassword(id int, passwordHash string) error
}
