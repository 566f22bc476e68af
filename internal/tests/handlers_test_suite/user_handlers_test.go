package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/wearapparel/admin-console/internal/http"
	handler "github.com/wearapparel/admin-console/internal/http/handlers"
)

func TestCreateUserHandler(t *testing.T) {
	r := api.NewRouter()

	w := authRequest(r, http.MethodPost, "/admin/users", handler.CreateUserRequest{
		Email:    "riley@wearapparel.test",
		Password: "secret99",
		FullName: "Riley Retail",
		Phone:    "0917 000 0000",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Email != "riley@wearapparel.test" {
		t.Errorf("expected email to round-trip, got %q", resp.Email)
	}
	if resp.Role != "staff" {
		t.Errorf("expected default role staff, got %q", resp.Role)
	}

	t.Run("duplicate email is rejected", func(t *testing.T) {
		w := authRequest(r, http.MethodPost, "/admin/users", handler.CreateUserRequest{
			Email:    "riley@wearapparel.test",
			Password: "secret99",
			FullName: "Riley Again",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", w.Code)
		}
	})

	t.Run("new account can log in", func(t *testing.T) {
		if _, err := generateToken(r, "riley@wearapparel.test", "secret99"); err != nil {
			t.Errorf("login as new user failed: %v", err)
		}
	})
}

func TestCreateUserHandler_Invalid(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.CreateUserRequest
		expectedFields []string
	}{
		{
			name:           "missing everything",
			payload:        handler.CreateUserRequest{},
			expectedFields: []string{"email", "full_name", "password"},
		},
		{
			name:           "short password",
			payload:        handler.CreateUserRequest{Email: "a@b.test", FullName: "A B", Password: "abc"},
			expectedFields: []string{"password"},
		},
		{
			name:           "bad role",
			payload:        handler.CreateUserRequest{Email: "a@b.test", FullName: "A B", Password: "abcdef", Role: "owner"},
			expectedFields: []string{"role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := authRequest(r, http.MethodPost, "/admin/users", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}

			var errs []handler.FieldError
			if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			for _, field := range tt.expectedFields {
				found := false
				for _, e := range errs {
					if e.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found in %v", field, errs)
				}
			}
		})
	}
}

func TestAdminRoutes_ForbiddenForStaff(t *testing.T) {
	r := api.NewRouter()

	w := authRequest(r, http.MethodPost, "/admin/users", handler.CreateUserRequest{
		Email:    "sam@wearapparel.test",
		Password: "secret99",
		FullName: "Sam Staff",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create staff user: %d", w.Code)
	}

	staffToken, err := generateToken(r, "sam@wearapparel.test", "secret99")
	if err != nil {
		t.Fatalf("staff login failed: %v", err)
	}

	body, _ := json.Marshal(handler.CreateUserRequest{
		Email:    "intruder@wearapparel.test",
		Password: "secret99",
		FullName: "In Truder",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+staffToken)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden for staff role, got %d", rec.Code)
	}
}

func TestGetUsersHandler(t *testing.T) {
	r := api.NewRouter()

	w := authRequest(r, http.MethodGet, "/admin/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var users []handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&users); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(users) == 0 {
		t.Fatal("expected at least the seeded admin account")
	}
	for i := 1; i < len(users); i++ {
		if users[i-1].FullName > users[i].FullName {
			t.Errorf("users not sorted by full name: %q before %q", users[i-1].FullName, users[i].FullName)
		}
	}

	foundAdmin := false
	for _, u := range users {
		if u.Email == adminEmail && u.Role == "admin" {
			foundAdmin = true
		}
	}
	if !foundAdmin {
		t.Error("seeded admin account missing from the list")
	}
}
