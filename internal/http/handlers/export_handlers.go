package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	repo "github.com/wearapparel/admin-console/internal/repo"
)

// ExportOrdersHandler godoc
// @Summary Export orders as CSV or JSON
// @Tags orders
// @Security BearerAuth
// @Produce text/csv, application/json
// @Param format query string true "Export format (csv or json)"
// @Param days query int false "Only orders from the last N days"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /orders/export [get]
func ExportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

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

	rows := make([]OrderResponse, len(orders))
	for i, o := range orders {
		rows[i] = toOrderResponse(o)
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.json"`)
		json.NewEncoder(w).Encode(rows)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "customer_name", "payment_method", "created_at", "payment_status", "delivery_status", "total_amount"})
		for _, row := range rows {
			_ = csvWriter.Write([]string{
				strconv.Itoa(row.Id),
				row.CustomerName,
				row.PaymentMethod,
				row.CreatedAt,
				row.PaymentStatus,
				row.DeliveryStatus,
				fmt.Sprintf("%.2f", row.TotalAmount),
			})
		}
		csvWriter.Flush()
	}
}
