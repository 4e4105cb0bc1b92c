package services

import (
	"context"

	"afiyazone/internal/repositories"
)

// Statistics is the admin dashboard summary.
type Statistics struct {
	TotalUsers     int64            `json:"totalUsers"`
	TotalProducts  int64            `json:"totalProducts"`
	TotalOrders    int64            `json:"totalOrders"`
	TotalRevenue   float64          `json:"totalRevenue"`
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
}

// StatisticsService computes the admin dashboard.
type StatisticsService struct {
	repo repositories.StatisticsRepository
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(repo repositories.StatisticsRepository) *StatisticsService {
	return &StatisticsService{repo: repo}
}

// Dashboard returns fresh counts on every call.
func (s *StatisticsService) Dashboard(ctx context.Context) (*Statistics, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &Statistics{
		TotalUsers:     counts.Users,
		TotalProducts:  counts.Products,
		TotalOrders:    counts.Orders,
		TotalRevenue:   counts.Revenue,
		OrdersByStatus: counts.OrdersByStatus,
	}, nil
}
