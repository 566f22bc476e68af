package handlers

import (
	"strings"

	"github.com/wearapparel/admin-console/internal/models"
)

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateStatusUpdate(req StatusUpdateRequest) []FieldError {
	errs := []FieldError{}
	if req.PaymentStatus == nil && req.DeliveryStatus == nil {
		errs = append(errs, FieldError{Field: "payment_status", Description: "at least one status field is required"})
		return errs
	}
	if req.PaymentStatus != nil && !models.ValidPaymentStatus(*req.PaymentStatus) {
		errs = append(errs, FieldError{Field: "payment_status", Description: "must be one of " + strings.Join(models.PaymentStatusOptions, ", ")})
	}
	if req.DeliveryStatus != nil && !models.ValidDeliveryStatus(*req.DeliveryStatus) {
		errs = append(errs, FieldError{Field: "delivery_status", Description: "must be one of " + strings.Join(models.DeliveryStatusOptions, ", ")})
	}
	return errs
}

func validateCreateUser(req CreateUserRequest) []FieldError {
	errs := []FieldError{}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Description: "a valid email is required"})
	}
	if strings.TrimSpace(req.FullName) == "" {
		errs = append(errs, FieldError{Field: "full_name", Description: "full name is required"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Description: "password must be at least 6 characters"})
	}
	if req.Role != "" && req.Role != "admin" && req.Role != "staff" {
		errs = append(errs, FieldError{Field: "role", Description: "role must be admin or staff"})
	}
	return errs
}
