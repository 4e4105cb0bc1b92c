package repositories

import (
	"context"
	"fmt"

	"afiyazone/internal/models"

	"gorm.io/gorm"
)

// Counts is the raw material of the admin dashboard.
type Counts struct {
	Users          int64
	Products       int64
	Orders         int64
	Revenue        float64
	OrdersByStatus map[string]int64
}

// StatisticsRepository aggregates over users, products and orders.
type StatisticsRepository interface {
	Counts(ctx context.Context) (*Counts, error)
}

// GORMStatisticsRepository is a GORM implementation of StatisticsRepository.
type GORMStatisticsRepository struct {
	db *gorm.DB
}

// NewGORMStatisticsRepository creates a new instance of GORMStatisticsRepository.
func NewGORMStatisticsRepository(db *gorm.DB) *GORMStatisticsRepository {
	return &GORMStatisticsRepository{db: db}
}

// Counts runs every dashboard query. Nothing is cached.
func (r *GORMStatisticsRepository) Counts(ctx context.Context) (*Counts, error) {
	db := r.db.WithContext(ctx)
	counts := &Counts{OrdersByStatus: make(map[string]int64, len(models.OrderStatuses))}
	for _, status := range models.OrderStatuses {
		counts.OrdersByStatus[status] = 0
	}

	if err := db.Model(&models.User{}).Count(&counts.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.Model(&models.Product{}).Count(&counts.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.Model(&models.Order{}).Count(&counts.Orders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := db.Model(&models.Order{}).Select("COALESCE(SUM(total), 0)").Scan(&counts.Revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum order totals: %w", err)
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.Order{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	for _, row := range rows {
		counts.OrdersByStatus[row.Status] = row.Count
	}
	return counts, nil
}
