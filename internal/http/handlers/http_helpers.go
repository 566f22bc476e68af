package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wearapparel/admin-console/internal/auth"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} MessageResult
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(MessageResult{Message: "ok"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// emailFromToken pulls the authenticated caller's email claim out of
// the Authorization header. The auth middleware has already verified
// the token by the time a handler runs.
func emailFromToken(r *http.Request) (string, error) {
	_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
	if err != nil {
		return "", err
	}
	email, _ := claims["email"].(string)
	return email, nil
}
