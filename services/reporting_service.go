package services

import (
	"sort"

	"storefront/models"
	"storefront/repository"
)

// ReportingService derives the admin financials view from the sales ledger.
type ReportingService struct {
	ledger repository.SalesLedger
}

func NewReportingService(ledger repository.SalesLedger) *ReportingService {
	return &ReportingService{ledger: ledger}
}

// FinancialReport is everything the financials tab renders in one payload.
type FinancialReport struct {
	Stats         models.SalesStats     `json:"stats"`
	RevenueByDay  []models.RevenuePoint `json:"revenue_by_day"`
	RevenueByUser []models.RevenuePoint `json:"revenue_by_user"`
}

func (s *ReportingService) Report() FinancialReport {
	sales := s.ledger.List()

	stats := models.SalesStats{TotalOrders: len(sales)}
	unitsByProduct := map[string]int{}
	for _, sale := range sales {
		stats.TotalRevenue += sale.TotalAmount
		for _, item := range sale.Items {
			unitsByProduct[item.Name] += item.Quantity
		}
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	topUnits := 0
	for name, units := range unitsByProduct {
		if units > topUnits || (units == topUnits && name < stats.TopProduct) {
			stats.TopProduct = name
			topUnits = units
		}
	}

	return FinancialReport{
		Stats:         stats,
		RevenueByDay:  groupRevenue(sales, func(s models.Sale) string { return s.Date.Format("2006-01-02") }),
		RevenueByUser: groupRevenue(sales, func(s models.Sale) string { return s.UserName }),
	}
}

// groupRevenue buckets sale totals by a label and returns the buckets in
// ascending label order so the series is stable.
func groupRevenue(sales []models.Sale, label func(models.Sale) string) []models.RevenuePoint {
	grouped := map[string]float64{}
	for _, sale := range sales {
		grouped[label(sale)] += sale.TotalAmount
	}

	points := make([]models.RevenuePoint, 0, len(grouped))
	for key, revenue := range grouped {
		points = append(points, models.RevenuePoint{Label: key, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points
}

// RecentSales returns up to n of the newest ledger entries, oldest first.
func (s *ReportingService) RecentSales(n int) []models.Sale {
	sales := s.ledger.List()
	if len(sales) > n {
		sales = sales[len(sales)-n:]
	}
	return sales
}

// ListSales returns the full ledger in insertion order.
func (s *ReportingService) ListSales() []models.Sale {
	return s.ledger.List()
}
