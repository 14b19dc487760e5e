package services

import (
	"testing"
	"time"

	"storefront/models"
	"storefront/repository"

	"github.com/stretchr/testify/assert"
)

func seedLedger(t *testing.T) *repository.SalesRepository {
	t.Helper()
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 1+offset, 12, 0, 0, 0, time.UTC)
	}
	return repository.NewSalesRepository([]models.Sale{
		{
			ID: "s1", UserID: "user-1", UserName: "John Doe",
			Items:       []models.CartItem{{Product: models.Product{ID: "p1", Name: "Watch", Price: 100}, Quantity: 1}},
			TotalAmount: 100, Date: day(0),
		},
		{
			ID: "s2", UserID: "user-2", UserName: "Alice Smith",
			Items:       []models.CartItem{{Product: models.Product{ID: "p2", Name: "Hoodie", Price: 50}, Quantity: 3}},
			TotalAmount: 150, Date: day(0),
		},
		{
			ID: "s3", UserID: "user-1", UserName: "John Doe",
			Items:       []models.CartItem{{Product: models.Product{ID: "p1", Name: "Watch", Price: 100}, Quantity: 1}},
			TotalAmount: 100, Date: day(1),
		},
	})
}

func TestReportTotals(t *testing.T) {
	svc := NewReportingService(seedLedger(t))

	report := svc.Report()

	assert.Equal(t, 350.0, report.Stats.TotalRevenue)
	assert.Equal(t, 3, report.Stats.TotalOrders)
	assert.InDelta(t, 116.6667, report.Stats.AvgOrderValue, 0.001)
	assert.Equal(t, "Hoodie", report.Stats.TopProduct, "top product is by units sold")
}

func TestReportRevenueByDay(t *testing.T) {
	svc := NewReportingService(seedLedger(t))

	report := svc.Report()

	assert.Equal(t, []models.RevenuePoint{
		{Label: "2026-08-01", Revenue: 250},
		{Label: "2026-08-02", Revenue: 100},
	}, report.RevenueByDay)
}

func TestReportRevenueByUser(t *testing.T) {
	svc := NewReportingService(seedLedger(t))

	report := svc.Report()

	assert.Equal(t, []models.RevenuePoint{
		{Label: "Alice Smith", Revenue: 150},
		{Label: "John Doe", Revenue: 200},
	}, report.RevenueByUser)
}

func TestReportEmptyLedger(t *testing.T) {
	svc := NewReportingService(repository.NewSalesRepository(nil))

	report := svc.Report()

	assert.Zero(t, report.Stats.TotalRevenue)
	assert.Zero(t, report.Stats.TotalOrders)
	assert.Zero(t, report.Stats.AvgOrderValue)
	assert.Empty(t, report.Stats.TopProduct)
	assert.Empty(t, report.RevenueByDay)
}

func TestRecentSalesKeepsNewest(t *testing.T) {
	svc := NewReportingService(seedLedger(t))

	recent := svc.RecentSales(2)

	assert.Len(t, recent, 2)
	assert.Equal(t, "s2", recent[0].ID)
	assert.Equal(t, "s3", recent[1].ID)
}
