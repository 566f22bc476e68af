package handlers

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type OrderResponse struct {
	Id             int     `json:"id"`
	CustomerName   string  `json:"customer_name"`
	PaymentMethod  string  `json:"payment_method"`
	TotalAmount    float64 `json:"total_amount"`
	PaymentStatus  string  `json:"payment_status"`
	DeliveryStatus string  `json:"delivery_status"`
	CreatedAt      string  `json:"created_at"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type OrdersSearchResult struct {
	Data []OrderResponse `json:"data"`
	Meta Meta            `json:"meta,omitempty"`
}

// StatusUpdateRequest carries the editable order fields; omitted
// fields are left as they are.
type StatusUpdateRequest struct {
	PaymentStatus  *string `json:"payment_status,omitempty"`
	DeliveryStatus *string `json:"delivery_status,omitempty"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

type UserResponse struct {
	Id       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
