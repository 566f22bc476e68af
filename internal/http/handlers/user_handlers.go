package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/wearapparel/admin-console/internal/models"
	"github.com/wearapparel/admin-console/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// CreateUserHandler godoc
// @Summary Create a staff account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "account to create"
// @Success 201 {object} UserResponse
// @Failure 400 {array} FieldError
// @Failure 403 {string} string "Forbidden"
// @Failure 409 {string} string "Email already registered"
// @Router /admin/users [post]
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCreateUser(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}

	now := time.Now().UTC()
	user := models.StaffUser{
		Email:        req.Email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := userRepo.Create(user)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "could not create user", http.StatusInternalServerError)
		return
	}

	resp := UserResponse{
		Id:       created.ID,
		Email:    created.Email,
		FullName: created.FullName,
		Phone:    created.Phone,
		Role:     created.Role,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetUsersHandler godoc
// @Summary List staff accounts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /admin/users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch users", http.StatusInternalServerError)
		return
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			Id:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			Phone:    u.Phone,
			Role:     u.Role,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
