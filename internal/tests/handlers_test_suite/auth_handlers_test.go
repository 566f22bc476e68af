package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/wearapparel/admin-console/internal/http"
	handler "github.com/wearapparel/admin-console/internal/http/handlers"
	rl "github.com/wearapparel/admin-console/internal/http/rate_limiter"
)

func TestHealthz(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.MessageResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "ok" {
		t.Errorf("expected message ok, got %q", resp.Message)
	}
}

func TestLogin_ValidCredentials(t *testing.T) {
	r := api.NewRouter()

	tok, err := generateToken(r, adminEmail, adminPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Error("expected a token in the response")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := api.NewRouter()
	rl.ResetVisitors()

	tests := []struct {
		name    string
		payload handler.CredentialsRequest
	}{
		{"wrong password", handler.CredentialsRequest{Email: adminEmail, Password: "nope"}},
		{"unknown email", handler.CredentialsRequest{Email: "ghost@wearapparel.test", Password: adminPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestProtectedRoute_RejectsGarbageToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	r := api.NewRouter()

	w := authRequest(r, http.MethodPost, "/admin/users", handler.CreateUserRequest{
		Email:    "casey@wearapparel.test",
		Password: "original1",
		FullName: "Casey Clerk",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create staff user: %d", w.Code)
	}

	staffToken, err := generateToken(r, "casey@wearapparel.test", "original1")
	if err != nil {
		t.Fatalf("staff login failed: %v", err)
	}

	change := func(tok string, payload handler.ChangePasswordRequest) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/password/change", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("wrong current password is rejected", func(t *testing.T) {
		w := change(staffToken, handler.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "updated1"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	t.Run("short new password is rejected", func(t *testing.T) {
		w := change(staffToken, handler.ChangePasswordRequest{CurrentPassword: "original1", NewPassword: "abc"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("correct current password updates the account", func(t *testing.T) {
		w := change(staffToken, handler.ChangePasswordRequest{CurrentPassword: "original1", NewPassword: "updated1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		if _, err := generateToken(r, "casey@wearapparel.test", "updated1"); err != nil {
			t.Errorf("login with new password failed: %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	r := api.NewRouter()

	w := authRequest(r, http.MethodPost, "/logout", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", w.Code)
	}
}
