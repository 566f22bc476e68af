package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/wearapparel/admin-console/internal/auth"
	api "github.com/wearapparel/admin-console/internal/http"
	handler "github.com/wearapparel/admin-console/internal/http/handlers"
	rl "github.com/wearapparel/admin-console/internal/http/rate_limiter"
	"github.com/wearapparel/admin-console/internal/mailsvc"
	"github.com/wearapparel/admin-console/internal/models"
	"github.com/wearapparel/admin-console/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@wearapparel.test"
	adminPassword = "secret123"
)

var (
	token      string
	orderRepo  *repo.InMemoryOrderRepository
	itemRepo   *repo.InMemoryOrderItemRepository
	userRepo   *repo.InMemoryUserRepository
	mockMailer *mailsvc.MockMailer
)

func init() {
	setupTestRepos()
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, adminEmail, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	itemRepo = repo.NewInMemoryOrderItemRepository()
	itemRepo.SetOrderRepository(orderRepo)
	handler.SetOrderItemRepo(itemRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	statsRepo := repo.NewInMemoryStatsRepository()
	statsRepo.SetRepositories(orderRepo, itemRepo)
	handler.SetStatsRepo(statsRepo)

	handler.SetTokenStore(auth.NewInMemoryTokenStore())

	mockMailer = mailsvc.NewMockMailer()
	handler.SetMailer(mockMailer)
	handler.SetResetURLBase("http://console.test/reset")

	hash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	userRepo.Create(models.StaffUser{
		Email:        adminEmail,
		FullName:     "Ada Admin",
		Role:         "admin",
		PasswordHash: string(hash),
	})
}

func clearOrders() {
	orderRepo.Clear()
	itemRepo.Clear()
}

// generateToken logs in through the router like a real client. The
// rate limiter is reset first so suites can log in freely.
func generateToken(r http.Handler, email, password string) (string, error) {
	rl.ResetVisitors()

	payload := handler.CredentialsRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func seedOrder(createdAt time.Time, amount float64, deliveryStatus, paymentStatus string) models.Order {
	o, _ := orderRepo.Create(models.Order{
		CustomerName:   "Test Customer",
		PaymentMethod:  "GCash",
		TotalAmount:    amount,
		PaymentStatus:  paymentStatus,
		DeliveryStatus: deliveryStatus,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	})
	return o
}

func seedItem(orderID int, productName string, quantity int) {
	itemRepo.Create(models.OrderItem{
		OrderID:     orderID,
		ProductName: productName,
		Quantity:    quantity,
	})
}

func authRequest(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
