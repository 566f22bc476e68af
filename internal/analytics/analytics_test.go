package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/wearapparel/admin-console/internal/models"
)

func orderAt(ts string, amount float64) models.Order {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return models.Order{TotalAmount: amount, CreatedAt: t}
}

func TestAggregateDailyRevenue_Empty(t *testing.T) {
	points := AggregateDailyRevenue(nil)
	if len(points) != 0 {
		t.Errorf("expected no points for empty input, got %v", points)
	}
}

func TestAggregateDailyRevenue_MergesSameDay(t *testing.T) {
	orders := []models.Order{
		orderAt("2024-01-01T10:00:00Z", 100),
		orderAt("2024-01-01T22:00:00Z", 50),
		orderAt("2024-01-02T00:00:00Z", 25),
	}

	points := AggregateDailyRevenue(orders)

	want := []DailyRevenuePoint{
		{Date: "2024-01-01", TotalRevenue: 150},
		{Date: "2024-01-02", TotalRevenue: 25},
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("expected %v, got %v", want, points)
	}
}

func TestAggregateDailyRevenue_SingleOrder(t *testing.T) {
	points := AggregateDailyRevenue([]models.Order{orderAt("2024-03-15T08:30:00Z", 75.5)})
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].Date != "2024-03-15" || points[0].TotalRevenue != 75.5 {
		t.Errorf("unexpected point %v", points[0])
	}
}

func TestAggregateDailyRevenue_ChronologicalAcrossMonths(t *testing.T) {
	// Dec 2 would sort before Nov 30 under any label like "Dec 2";
	// YYYY-MM-DD keys must come back in date order.
	orders := []models.Order{
		orderAt("2023-12-02T09:00:00Z", 10),
		orderAt("2023-11-30T09:00:00Z", 20),
	}

	points := AggregateDailyRevenue(orders)

	if points[0].Date != "2023-11-30" || points[1].Date != "2023-12-02" {
		t.Errorf("expected chronological order, got %v", points)
	}
}

func TestAggregateDailyRevenue_SumInvariant(t *testing.T) {
	orders := []models.Order{
		orderAt("2024-05-01T01:00:00Z", 19.99),
		orderAt("2024-05-01T02:00:00Z", 0.01),
		orderAt("2024-05-03T03:00:00Z", 42.5),
		orderAt("2024-05-07T04:00:00Z", 0), // missing amount coerced to zero upstream
	}

	var wantTotal float64
	for _, o := range orders {
		wantTotal += o.TotalAmount
	}

	var gotTotal float64
	for _, p := range AggregateDailyRevenue(orders) {
		gotTotal += p.TotalRevenue
	}

	if math.Abs(gotTotal-wantTotal) > 0.005 {
		t.Errorf("point totals sum to %v, orders sum to %v", gotTotal, wantTotal)
	}
}

func TestAggregateDailyRevenue_Rounding(t *testing.T) {
	orders := []models.Order{
		orderAt("2024-06-01T10:00:00Z", 10.004),
		orderAt("2024-06-01T11:00:00Z", 10.004),
	}

	points := AggregateDailyRevenue(orders)

	if points[0].TotalRevenue != 20.01 {
		t.Errorf("expected 20.01, got %v", points[0].TotalRevenue)
	}
}

func TestAggregateDailyRevenue_Idempotent(t *testing.T) {
	orders := []models.Order{
		orderAt("2024-01-01T10:00:00Z", 100),
		orderAt("2024-01-02T10:00:00Z", 50),
	}

	first := AggregateDailyRevenue(orders)
	second := AggregateDailyRevenue(orders)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestAggregateStatusCounts_Empty(t *testing.T) {
	counts := AggregateStatusCounts(nil)
	if len(counts) != 0 {
		t.Errorf("expected no counts for empty input, got %v", counts)
	}
}

func TestAggregateStatusCounts_CountInvariant(t *testing.T) {
	orders := []models.Order{
		{DeliveryStatus: models.DeliveryShipped},
		{DeliveryStatus: models.DeliveryProcessing},
		{DeliveryStatus: models.DeliveryShipped},
		{DeliveryStatus: ""},
		{DeliveryStatus: models.DeliveryDelivered},
	}

	counts := AggregateStatusCounts(orders)

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	if total != len(orders) {
		t.Errorf("counts sum to %d, want %d", total, len(orders))
	}
}

func TestAggregateStatusCounts_MissingStatusIsUnknown(t *testing.T) {
	counts := AggregateStatusCounts([]models.Order{{DeliveryStatus: ""}})

	if len(counts) != 1 || counts[0].Status != UnknownStatus || counts[0].Count != 1 {
		t.Errorf("expected one Unknown entry, got %v", counts)
	}
}

func TestAggregateStatusCounts_FirstSeenOrder(t *testing.T) {
	orders := []models.Order{
		{DeliveryStatus: models.DeliveryShipped},
		{DeliveryStatus: models.DeliveryProcessing},
		{DeliveryStatus: models.DeliveryShipped},
	}

	counts := AggregateStatusCounts(orders)

	want := []StatusCount{
		{Status: models.DeliveryShipped, Count: 2},
		{Status: models.DeliveryProcessing, Count: 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("expected %v, got %v", want, counts)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, nil)

	if stats.TotalSales != 0 {
		t.Errorf("expected zero total sales, got %v", stats.TotalSales)
	}
	if stats.NewOrders != 0 {
		t.Errorf("expected zero new orders, got %v", stats.NewOrders)
	}
	if stats.AverageOrderValue != 0 {
		t.Errorf("expected zero average, got %v", stats.AverageOrderValue)
	}
	if stats.TopItemSold != NoTopItem {
		t.Errorf("expected %q, got %q", NoTopItem, stats.TopItemSold)
	}
}

func TestComputeStats_Totals(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 120},
		{TotalAmount: 80},
		{TotalAmount: 0},
	}
	items := []models.OrderItem{
		{ProductName: "Hoodie", Quantity: 2},
		{ProductName: "Tee", Quantity: 7},
		{ProductName: "Hoodie", Quantity: 3},
	}

	stats := ComputeStats(orders, items)

	if stats.TotalSales != 200 {
		t.Errorf("expected total sales 200, got %v", stats.TotalSales)
	}
	if stats.NewOrders != 3 {
		t.Errorf("expected 3 new orders, got %v", stats.NewOrders)
	}
	wantAvg := 200.0 / 3.0
	if math.Abs(stats.AverageOrderValue-wantAvg) > 1e-9 {
		t.Errorf("expected average %v, got %v", wantAvg, stats.AverageOrderValue)
	}
	if stats.TopItemSold != "Tee" {
		t.Errorf("expected Tee as top item, got %q", stats.TopItemSold)
	}
}

func TestComputeStats_TopItemTieKeepsFirstSeen(t *testing.T) {
	items := []models.OrderItem{
		{ProductName: "A", Quantity: 5},
		{ProductName: "B", Quantity: 5},
	}

	stats := ComputeStats(nil, items)

	if stats.TopItemSold != "A" {
		t.Errorf("expected first-seen product A to win the tie, got %q", stats.TopItemSold)
	}
}

func TestComputeStats_ZeroQuantityItemsYieldNoTopItem(t *testing.T) {
	items := []models.OrderItem{
		{ProductName: "A", Quantity: 0},
		{ProductName: "B", Quantity: 0},
	}

	stats := ComputeStats(nil, items)

	if stats.TopItemSold != NoTopItem {
		t.Errorf("expected %q when nothing sold, got %q", NoTopItem, stats.TopItemSold)
	}
}

func TestComputeStats_ZeroOrdersAverageIsTotalSales(t *testing.T) {
	// The divisor floors at 1, so an empty window reports an average
	// of 0 instead of NaN.
	stats := ComputeStats([]models.Order{}, []models.OrderItem{})

	if stats.AverageOrderValue != 0 {
		t.Errorf("expected 0 average for empty window, got %v", stats.AverageOrderValue)
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	orders := []models.Order{{TotalAmount: 40}, {TotalAmount: 60}}
	items := []models.OrderItem{{ProductName: "Cap", Quantity: 1}}

	first := ComputeStats(orders, items)
	second := ComputeStats(orders, items)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
}
