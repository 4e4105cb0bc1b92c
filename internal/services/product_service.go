package services

import (
	"context"

	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
)

// ProductService provides catalog operations and ratings.
type ProductService struct {
	repo  repositories.ProductRepository
	store repositories.Store
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, store repositories.Store) *ProductService {
	return &ProductService{repo: repo, store: store}
}

// ProductInput is the admin-editable part of a product.
type ProductInput struct {
	Name          models.LocalizedText   `json:"name"`
	Description   models.LocalizedText   `json:"description"`
	Category      string                 `json:"category" validate:"required,oneof=supplements cosmetics herbal medical accessories"`
	Price         float64                `json:"price" validate:"gte=0"`
	OriginalPrice float64                `json:"originalPrice" validate:"gte=0"`
	Stock         int                    `json:"stock" validate:"gte=0"`
	Images        []string               `json:"images" validate:"required,min=1"`
	Features      []models.LocalizedLine `json:"features"`
	Benefits      []models.LocalizedLine `json:"benefits"`
	IsNew         bool                   `json:"isNew"`
	IsFeatured    bool                   `json:"isFeatured"`
	IsPopular     bool                   `json:"isPopular"`
	Discount      float64                `json:"discount" validate:"gte=0,lte=100"`
}

func (in ProductInput) apply(p *models.Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.Stock = in.Stock
	p.Images = in.Images
	p.Features = in.Features
	p.Benefits = in.Benefits
	p.IsNew = in.IsNew
	p.IsFeatured = in.IsFeatured
	p.IsPopular = in.IsPopular
	p.Discount = in.Discount
}

// RatingResult is the outcome of rating a product.
type RatingResult struct {
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"totalRatings"`
}

// List returns the products matching filter.
func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a product by its ID.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a product to the catalog.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	product := &models.Product{}
	in.apply(product)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces the editable fields of a product. The rating is kept.
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(product)
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product and its ratings.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Rate stores userID's rating of a product, replacing an earlier one, and
// recomputes the product's mean rating.
func (s *ProductService) Rate(ctx context.Context, productID, userID string, rating int) (*RatingResult, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	result := &RatingResult{}
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		if _, err := repos.Products.GetByID(ctx, productID); err != nil {
			return err
		}
		if err := repos.Products.UpsertRating(ctx, &models.ProductRating{
			ProductID: productID,
			UserID:    userID,
			Rating:    rating,
		}); err != nil {
			return err
		}
		ratings, err := repos.Products.ListRatings(ctx, productID)
		if err != nil {
			return err
		}

		var sum int
		for _, r := range ratings {
			sum += r.Rating
		}
		result.TotalRatings = len(ratings)
		if len(ratings) > 0 {
			result.Rating = float64(sum) / float64(len(ratings))
		}
		return repos.Products.SetRating(ctx, productID, result.Rating)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
