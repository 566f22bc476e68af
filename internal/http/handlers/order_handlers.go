package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wearapparel/admin-console/internal/models"
	repo "github.com/wearapparel/admin-console/internal/repo"
)

// windowSince turns an optional ?days=N query into a window lower
// bound. Absent or zero means no window.
func windowSince(r *http.Request) (*time.Time, error) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return nil, nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 0 {
		return nil, errors.New("days must be a non-negative integer")
	}
	if days == 0 {
		return nil, nil
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return &since, nil
}

// toOrderResponse maps an order row to its list representation. Rows
// written before the status columns existed show the entry defaults,
// matching the dropdowns staff edit.
func toOrderResponse(o models.Order) OrderResponse {
	payment := o.PaymentStatus
	if payment == "" {
		payment = models.PaymentPending
	}
	delivery := o.DeliveryStatus
	if delivery == "" {
		delivery = models.DeliveryProcessing
	}
	return OrderResponse{
		Id:             o.ID,
		CustomerName:   o.CustomerName,
		PaymentMethod:  o.PaymentMethod,
		TotalAmount:    o.TotalAmount,
		PaymentStatus:  payment,
		DeliveryStatus: delivery,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// GetOrdersHandler godoc
// @Summary List orders, newest first
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param days query int false "Only orders from the last N days"
// @Success 200 {object} OrdersSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	since, err := windowSince(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := orderRepo.GetAll(repo.OrderFilter{Since: since})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	resp := OrdersSearchResult{
		Data: make([]OrderResponse, len(orders)),
		Meta: Meta{TotalCount: len(orders)},
	}
	for i, o := range orders {
		resp.Data[i] = toOrderResponse(o)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateOrderStatusHandler godoc
// @Summary Update the payment and/or delivery status of an order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param statuses body StatusUpdateRequest true "statuses to set"
// @Success 200 {object} OrderResponse
// @Failure 400 {array} FieldError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id}/status [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateStatusUpdate(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := orderRepo.UpdateStatus(id, repo.StatusUpdate{
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toOrderResponse(updated)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
