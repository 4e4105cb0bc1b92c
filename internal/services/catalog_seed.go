package services

import (
	"context"
	"fmt"

	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
)

// starterCatalog is loaded into an empty store by the seed-products command.
var starterCatalog = []models.Product{
	{
		Name:          models.LocalizedText{En: "Digital Blood Pressure Monitor", Ar: "جهاز قياس ضغط الدم الرقمي"},
		Description:   models.LocalizedText{En: "Digital blood pressure monitor with large LCD display and memory function", Ar: "جهاز قياس ضغط الدم الرقمي بشاشة LCD كبيرة ووظيفة ذاكرة"},
		Category:      "medical",
		Price:         299.99,
		OriginalPrice: 399.99,
		Stock:         45,
		Images:        []string{"https://images.unsplash.com/photo-1559757148-5c350d0d3c56"},
		Features: []models.LocalizedLine{
			{En: "One-touch measurement", Ar: "قياس بلمسة واحدة"},
			{En: "Memory for 60 readings", Ar: "ذاكرة لـ 60 قراءة"},
		},
		Rating:     4.7,
		IsFeatured: true,
		IsPopular:  true,
	},
	{
		Name:          models.LocalizedText{En: "Pulse Oximeter", Ar: "جهاز قياس نبض الأكسجين"},
		Description:   models.LocalizedText{En: "Portable finger pulse oximeter for blood oxygen monitoring", Ar: "جهاز قياس نبض الأكسجين المحمول لمراقبة الأكسجين في الدم"},
		Category:      "medical",
		Price:         89.99,
		OriginalPrice: 129.99,
		Stock:         120,
		Images:        []string{"https://images.unsplash.com/photo-1584456319363-d6a9ca8d25c0"},
		Rating:        4.6,
		IsFeatured:    true,
	},
	{
		Name:        models.LocalizedText{En: "Vitamin D3 + K2", Ar: "فيتامين د3 + ك2"},
		Description: models.LocalizedText{En: "Daily vitamin D3 with K2 for bone and immune health", Ar: "فيتامين د3 اليومي مع ك2 لصحة العظام والمناعة"},
		Category:    "supplements",
		Price:       29.99,
		Stock:       150,
		Images:      []string{"https://images.unsplash.com/photo-1584308666744-24d5c474f2ae"},
		Benefits: []models.LocalizedLine{
			{En: "Supports bone health", Ar: "يدعم صحة العظام"},
		},
		Rating:     4.8,
		IsFeatured: true,
		IsPopular:  true,
	},
	{
		Name:        models.LocalizedText{En: "Organic Face Serum", Ar: "سيروم الوجه العضوي"},
		Description: models.LocalizedText{En: "Lightweight organic serum for daily hydration", Ar: "سيروم عضوي خفيف للترطيب اليومي"},
		Category:    "cosmetics",
		Price:       45.99,
		Stock:       80,
		Images:      []string{"https://images.unsplash.com/photo-1620916566398-39f1143ab7be"},
		Rating:      4.9,
		IsNew:       true,
	},
	{
		Name:        models.LocalizedText{En: "Herbal Sleep Tea", Ar: "شاي النوم العشبي"},
		Description: models.LocalizedText{En: "Chamomile and lavender blend for restful sleep", Ar: "مزيج البابونج واللافندر لنوم هادئ"},
		Category:    "herbal",
		Price:       18.99,
		Stock:       200,
		Images:      []string{"https://images.unsplash.com/photo-1544787219-7f47ccb76574"},
		Rating:      4.7,
		IsFeatured:  true,
		Discount:    10,
	},
}

// SeedCatalog inserts the starter catalog when no product exists yet. It
// returns how many products were inserted.
func SeedCatalog(ctx context.Context, repo repositories.ProductRepository) (int, error) {
	existing, err := repo.List(ctx, repositories.ProductFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i := range starterCatalog {
		product := starterCatalog[i]
		if err := repo.Create(ctx, &product); err != nil {
			return i, fmt.Errorf("failed to seed product %q: %w", product.Name.En, err)
		}
	}
	return len(starterCatalog), nil
}
