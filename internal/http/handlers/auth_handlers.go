package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wearapparel/admin-console/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate a staff account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByEmail(credentials.Email)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// LogoutHandler godoc
// @Summary Sign out the current session
// @Description Tokens are short-lived; the client discards its copy.
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MessageResult
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := json.NewEncoder(w).Encode(MessageResult{Message: "signed out"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ChangePasswordHandler godoc
// @Summary Change the password of the authenticated account
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param passwords body ChangePasswordRequest true "current and new password"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Wrong current password"
// @Router /password/change [post]
func ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	email, err := emailFromToken(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(req.NewPassword) < 6 {
		http.Error(w, "new password too short", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByEmail(email)
	if err != nil {
		http.Error(w, "account not found", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		http.Error(w, "current password is incorrect", http.StatusUnauthorized)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	if err := userRepo.UpdatePassword(user.ID, string(hashed)); err != nil {
		http.Error(w, "could not update password", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(MessageResult{Message: "password updated"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
