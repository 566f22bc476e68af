// Package analytics derives dashboard figures from order snapshots.
// Everything here is a pure function over the slices it is handed: no
// store access, no shared state, and no failure modes. Malformed rows
// (missing amounts or statuses) are coerced to safe defaults instead of
// being rejected, so a single bad record can never break the dashboard.
package analytics

import (
	"math"
	"sort"

	"github.com/wearapparel/admin-console/internal/models"
)

// DailyRevenuePoint is one day of summed revenue for the line chart.
// Date is a UTC calendar day formatted as YYYY-MM-DD.
type DailyRevenuePoint struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// StatusCount is one slice of the delivery-status pie chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardStats are the four summary-card figures. Callers decide the
// time window by pre-filtering the input; nothing here inspects dates.
type DashboardStats struct {
	TotalSales        float64 `json:"total_sales"`
	NewOrders         int     `json:"new_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	TopItemSold       string  `json:"top_item_sold"`
}

// NoTopItem is reported when no line items exist in the window.
const NoTopItem = "N/A"

// UnknownStatus buckets orders whose delivery status was never set.
// This is deliberately not the "Processing" default the order list
// shows: the chart reports what is actually stored.
const UnknownStatus = "Unknown"

// AggregateDailyRevenue groups orders by the UTC calendar day of their
// creation and sums their amounts. Days are keyed as YYYY-MM-DD, so the
// output sorts chronologically and never collides across years. Each
// day's total is rounded half-away-from-zero to 2 decimals.
func AggregateDailyRevenue(orders []models.Order) []DailyRevenuePoint {
	totals := make(map[string]float64, len(orders))
	for _, o := range orders {
		day := o.CreatedAt.UTC().Format("2006-01-02")
		totals[day] += o.TotalAmount
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]DailyRevenuePoint, 0, len(days))
	for _, day := range days {
		points = append(points, DailyRevenuePoint{
			Date:         day,
			TotalRevenue: round2(totals[day]),
		})
	}
	return points
}

// AggregateStatusCounts tallies orders per delivery status. Orders with
// no stored status count under UnknownStatus. Entries appear in the
// order each status is first seen in the input, which keeps the output
// stable for a given snapshot.
func AggregateStatusCounts(orders []models.Order) []StatusCount {
	counts := make(map[string]int, len(orders))
	var seen []string
	for _, o := range orders {
		status := o.DeliveryStatus
		if status == "" {
			status = UnknownStatus
		}
		if _, ok := counts[status]; !ok {
			seen = append(seen, status)
		}
		counts[status]++
	}

	result := make([]StatusCount, 0, len(seen))
	for _, status := range seen {
		result = append(result, StatusCount{Status: status, Count: counts[status]})
	}
	return result
}

// ComputeStats folds orders and line items into the summary cards.
//
// The average divides by max(newOrders, 1) so an empty window yields 0
// rather than NaN. That floor also means one zero-value order and zero
// orders are indistinguishable; the dashboard has always worked that
// way and callers rely on it.
//
// The top item is the product with the strictly largest summed
// quantity. Ties keep the product that appeared first in the input.
func ComputeStats(orders []models.Order, items []models.OrderItem) DashboardStats {
	stats := DashboardStats{TopItemSold: NoTopItem}

	for _, o := range orders {
		stats.TotalSales += o.TotalAmount
	}
	stats.NewOrders = len(orders)

	divisor := stats.NewOrders
	if divisor == 0 {
		divisor = 1
	}
	stats.AverageOrderValue = stats.TotalSales / float64(divisor)

	quantities := make(map[string]int, len(items))
	var names []string
	for _, it := range items {
		if _, ok := quantities[it.ProductName]; !ok {
			names = append(names, it.ProductName)
		}
		quantities[it.ProductName] += it.Quantity
	}
	best := 0
	for _, name := range names {
		if quantities[name] > best {
			best = quantities[name]
			stats.TopItemSold = name
		}
	}

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
