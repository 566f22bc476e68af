package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/wearapparel/admin-console/internal/analytics"
	repo "github.com/wearapparel/admin-console/internal/repo"
)

// The dashboard defaults to the trailing month, like the summary cards
// it feeds.
const defaultWindowDays = 30

func dashboardWindow(r *http.Request) (*time.Time, error) {
	since, err := windowSince(r)
	if err != nil {
		return nil, err
	}
	if since == nil && r.URL.Query().Get("days") == "" {
		s := time.Now().UTC().AddDate(0, 0, -defaultWindowDays)
		since = &s
	}
	return since, nil
}

// GetDashboardStatsHandler godoc
// @Summary Summary cards: total sales, new orders, average order value, top item
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days (default 30, 0 for all time)"
// @Success 200 {object} analytics.DashboardStats
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	since, err := dashboardWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := statsRepo.GetDashboardStats(since)
	if err != nil {
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetRevenueChartHandler godoc
// @Summary Daily revenue series for the line chart
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days (default 30, 0 for all time)"
// @Success 200 {array} analytics.DailyRevenuePoint
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/charts/revenue [get]
func GetRevenueChartHandler(w http.ResponseWriter, r *http.Request) {
	since, err := dashboardWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := orderRepo.GetAll(repo.OrderFilter{Since: since})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(analytics.AggregateDailyRevenue(orders)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetStatusChartHandler godoc
// @Summary Orders per delivery status for the pie chart
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days (default 30, 0 for all time)"
// @Success 200 {array} analytics.StatusCount
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/charts/status [get]
func GetStatusChartHandler(w http.ResponseWriter, r *http.Request) {
	since, err := dashboardWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := orderRepo.GetAll(repo.OrderFilter{Since: since})
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(analytics.AggregateStatusCounts(orders)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
