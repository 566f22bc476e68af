package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/wearapparel/admin-console/internal/auth"
	"github.com/wearapparel/admin-console/internal/mailsvc"
	"golang.org/x/crypto/bcrypt"
)

// ForgotPasswordHandler godoc
// @Summary Request a password-reset link by email
// @Description Always answers 200 so the endpoint cannot be used to probe which emails have accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param email body ForgotPasswordRequest true "account email"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid input"
// @Router /password/forgot [post]
func ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if user, err := userRepo.GetByEmail(req.Email); err == nil {
		token, err := tokenStore.Issue(user.Email)
		if err != nil {
			log.Printf("Failed to issue reset token for %s: %v", user.Email, err)
		} else {
			link := fmt.Sprintf("%s?token=%s", resetURLBase, token)
			body := fmt.Sprintf("Hello %s,\n\nA password reset was requested for your WEAR APPAREL console account.\nThe link below is valid for %s and can be used once:\n\n%s\n\nIf you did not request this, you can ignore this email.",
				user.FullName, auth.ResetTokenTTL, link)
			if err := mailer.Send(user.Email, "Reset your console password", body); err != nil {
				log.Printf("Failed to send reset email to %s: %v", user.Email, err)
			}
		}

		ip, _, splitErr := net.SplitHostPort(r.RemoteAddr)
		if splitErr != nil {
			ip = r.RemoteAddr
		}
		mailsvc.LogResetRequest(req.Email, ip)
	}

	if err := json.NewEncoder(w).Encode(MessageResult{
		Message: "if that account exists, a reset link has been sent",
	}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ResetPasswordHandler godoc
// @Summary Set a new password using an emailed reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body ResetPasswordRequest true "token and new password"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid or expired token"
// @Router /password/reset [post]
func ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Token == "" || len(req.NewPassword) < 6 {
		http.Error(w, "token and a password of at least 6 characters are required", http.StatusBadRequest)
		return
	}

	email, err := tokenStore.Consume(req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrResetTokenInvalid) {
			http.Error(w, "invalid or expired reset token", http.StatusUnauthorized)
			return
		}
		http.Error(w, "could not verify reset token", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.GetByEmail(email)
	if err != nil {
		http.Error(w, "account not found", http.StatusUnauthorized)
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
