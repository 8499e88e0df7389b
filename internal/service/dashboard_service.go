package service

import (
	"context"
	"time"

	"catalog-orders/internal/domain"
	"catalog-orders/internal/repository"
)

// RecentOrdersWindow is how far back the daily order histogram reaches
const RecentOrdersWindow = 7 * 24 * time.Hour

// DashboardService defines the interface for dashboard metrics
type DashboardService interface {
	Metrics(ctx context.Context) (*domain.DashboardMetrics, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	timezone      string
	now           func() time.Time
}

// NewDashboardService creates a new instance of DashboardService. Orders are
// bucketed into calendar days in timezone (an IANA name, UTC when empty).
func NewDashboardService(dashboardRepo repository.DashboardRepository, timezone string) DashboardService {
	return newDashboardService(dashboardRepo, timezone, time.Now)
}

func newDashboardService(dashboardRepo repository.DashboardRepository, timezone string, now func() time.Time) *dashboardService {
	if timezone == "" {
		timezone = "UTC"
	}
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		timezone:      timezone,
		now:           now,
	}
}

// Metrics computes each figure with its own query. Any failure aborts the
// whole report.
func (s *dashboardService) Metrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	totalOrders, err := s.dashboardRepo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	average, err := s.dashboardRepo.AverageOrderTotal(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.dashboardRepo.SumOrderTotals(ctx)
	if err != nil {
		return nil, err
	}

	since := s.now().Add(-RecentOrdersWindow)
	days, err := s.dashboardRepo.DailyOrderCounts(ctx, since, s.timezone)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardMetrics{
		TotalOrders:       totalOrders,
		AverageOrderValue: average,
		TotalRevenue:      revenue,
		OrdersLast7Days:   days,
	}, nil
}
