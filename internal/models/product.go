package models

import "time"

// Product categories.
var ProductCategories = []string{"supplements", "cosmetics", "herbal", "medical", "accessories"}

// LocalizedText holds the English and Arabic rendering of a string.
type LocalizedText struct {
	En string `json:"en" validate:"required"`
	Ar string `json:"ar" validate:"required"`
}

// LocalizedLine is an optional bilingual bullet (feature or benefit).
type LocalizedLine struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Product represents a catalog entry.
type Product struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          LocalizedText   `json:"name" gorm:"embedded;embeddedPrefix:name_"`
	Description   LocalizedText   `json:"description" gorm:"embedded;embeddedPrefix:description_"`
	Category      string          `json:"category" gorm:"type:varchar(32);index;not null"`
	Price         float64         `json:"price" gorm:"index"`
	OriginalPrice float64         `json:"originalPrice,omitempty"`
	Stock         int             `json:"stock"`
	Images        []string        `json:"images" gorm:"type:text;serializer:json"`
	Features      []LocalizedLine `json:"features" gorm:"type:text;serializer:json"`
	Benefits      []LocalizedLine `json:"benefits" gorm:"type:text;serializer:json"`
	Rating        float64         `json:"rating"`
	Ratings       []ProductRating `json:"ratings,omitempty"`
	IsNew         bool            `json:"isNew"`
	IsFeatured    bool            `json:"isFeatured"`
	IsPopular     bool            `json:"isPopular"`
	Discount      float64         `json:"discount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductRating is one user's rating of a product. A user holds at most one
// rating per product.
type ProductRating struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	ProductID string    `json:"-" gorm:"type:varchar(36);uniqueIndex:idx_product_user_rating;not null"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_product_user_rating;not null"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
