package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"afiyazone/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves the products matching filter.
func (r *GORMProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		q = q.Where("rating >= ?", *filter.MinRating)
	}
	if filter.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		q = q.Where("LOWER(name_en) LIKE ? ESCAPE '\\' OR LOWER(name_ar) LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	switch filter.SortBy {
	case SortPriceLowHigh:
		q = q.Order("price ASC")
	case SortPriceHighLow:
		q = q.Order("price DESC")
	case SortNewest:
		q = q.Order("created_at DESC")
	default:
		q = q.Order("rating DESC")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product and its ratings.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Ratings").First(&product, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("product with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit("Ratings").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites the editable columns of a product. The aggregate
// rating is owned by the rating flow and left untouched.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("*").
		Omit("id", "rating", "created_at", clause.Associations).
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for update: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product and its ratings.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductRating{}).Error; err != nil {
			return fmt.Errorf("failed to delete product ratings: %w", err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s not found for deletion: %w", id, ErrNotFound)
		}
		return nil
	})
}

// UpsertRating stores the user's rating of a product, replacing an earlier
// one by the same user.
func (r *GORMProductRepository) UpsertRating(ctx context.Context, rating *models.ProductRating) error {
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "created_at"}),
	}).Create(rating).Error
	if err != nil {
		return fmt.Errorf("failed to store rating for product %s: %w", rating.ProductID, err)
	}
	return nil
}

// ListRatings returns every stored rating of a product.
func (r *GORMProductRepository) ListRatings(ctx context.Context, productID string) ([]models.ProductRating, error) {
	var ratings []models.ProductRating
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings for product %s: %w", productID, err)
	}
	return ratings, nil
}

// SetRating overwrites the aggregate rating of a product.
func (r *GORMProductRepository) SetRating(ctx context.Context, productID string, rating float64) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("rating", rating)
	if res.Error != nil {
		return fmt.Errorf("failed to set rating for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found: %w", productID, ErrNotFound)
	}
	return nil
}
