package repositories

import (
	"context"

	"afiyazone/internal/models"
)

// Product list orderings.
const (
	SortPriceLowHigh = "priceLowHigh"
	SortPriceHighLow = "priceHighLow"
	SortRating       = "rating"
	SortNewest       = "newest"
)

// ProductFilter narrows a product listing. Zero values disable a filter.
type ProductFilter struct {
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Search    string
	Featured  bool
	SortBy    string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	UpsertRating(ctx context.Context, rating *models.ProductRating) error
	ListRatings(ctx context.Context, productID string) ([]models.ProductRating, error)
	SetRating(ctx context.Context, productID string, rating float64) error
}
