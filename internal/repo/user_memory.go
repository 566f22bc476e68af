package repo

import (
	"sort"

	"github.com/wearapparel/admin-console/internal/models"
)

type InMemoryUserRepository struct {
	users  []models.StaffUser
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  []models.StaffUser{},
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) GetByEmail(email string) (models.StaffUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.StaffUser{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetAll() ([]models.StaffUser, error) {
	result := append([]models.StaffUser{}, r.users...)
	sort.Slice(result, func(i, j int) bool {
		return result[i].FullName < result[j].FullName
	})
	for i := range result {
		result[i].PasswordHash = ""
	}
	return result, nil
}

func (r *InMemoryUserRepository) Create(u models.StaffUser) (models.StaffUser, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.StaffUser{}, ErrDuplicateEmail
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) UpdatePassword(id int, passwordHash string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrUserNotFound
}
