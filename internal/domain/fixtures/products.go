package fixtures

import "github.com/AtRiskMedia/glowyn-go/internal/domain/entities"

func Categories() []entities.Category {
	return []entities.Category{
		{ID: "category-1", Name: "Makeup", Icon: "brush", ImageURL: strPtr(photo("photo-1596462502278-27bfdc403348"))},
		{ID: "category-2", Name: "Skincare", Icon: "droplet", ImageURL: strPtr(photo("photo-1556228720-195a672e8a03"))},
		{ID: "category-3", Name: "Fashion", Icon: "shirt", ImageURL: strPtr(photo("photo-1551232864-3f0890e580d9"))},
		{ID: "category-4", Name: "Accessories", Icon: "gem", ImageURL: strPtr(photo("photo-1576053139778-7e32f2ae3cfd"))},
	}
}

// FeaturedProducts is the seed catalog. Entries flagged IsWishlisted seed the
// initial wishlist.
func FeaturedProducts() []entities.Product {
	return []entities.Product{
		{
			ID:           "product-1",
			Name:         "Coral Sunset Lipstick",
			Brand:        "Glowyn",
			Price:        189000,
			ImageURL:     photo("photo-1586495777744-4413f21062fa"),
			Rating:       4.8,
			Category:     "Makeup",
			Description:  strPtr("A vibrant coral lipstick that complements warm skin tones perfectly."),
			Colors:       []string{"#FF7F50", "#FF6347", "#FF4500"},
			IsWishlisted: true,
		},
		{
			ID:          "product-2",
			Name:        "Hydrating Serum",
			Brand:       "Glowyn Skin",
			Price:       299000,
			ImageURL:    photo("photo-1620916566398-39f1143ab7be"),
			Rating:      4.9,
			Category:    "Skincare",
			Description: strPtr("An intensely hydrating serum with hyaluronic acid for all skin types."),
		},
		{
			ID:          "product-3",
			Name:        "Gold Hoop Earrings",
			Brand:       "Glowyn Accessories",
			Price:       249000,
			ImageURL:    photo("photo-1630019852942-f89202989a59"),
			Rating:      4.7,
			Category:    "Accessories",
			Description: strPtr("Classic gold hoop earrings that complement warm skin tones."),
		},
		{
			ID:           "product-4",
			Name:         "Silk Scarf - Coral Pattern",
			Brand:        "Glowyn Fashion",
			Price:        349000,
			ImageURL:     photo("photo-1584030373081-f37b7bb4fa8e"),
			Rating:       4.6,
			Category:     "Fashion",
			Description:  strPtr("A luxurious silk scarf in warm coral tones, perfect for spring and summer."),
			IsWishlisted: true,
		},
	}
}

func Collections() []entities.Collection {
	p := FeaturedProducts()
	return []entities.Collection{
		{
			ID:          "collection-1",
			Name:        "Spring Essentials",
			Description: strPtr("Must-have items for the spring season"),
			ImageURL:    photo("photo-1556905055-8f358a7a47b2"),
			Products:    entities.CloneProducts(p[0:3]),
		},
		{
			ID:          "collection-2",
			Name:        "Warm Tone Favorites",
			Description: strPtr("Products that complement warm skin tones"),
			ImageURL:    photo("photo-1522335789203-aabd1fc54bc9"),
			Products:    entities.CloneProducts([]entities.Product{p[0], p[3]}),
		},
		{
			ID:          "collection-3",
			Name:        "Everyday Glam",
			Description: strPtr("Effortless beauty for your daily routine"),
			ImageURL:    photo("photo-1596462502278-27bfdc403348"),
			Products:    entities.CloneProducts(p[1:4]),
		},
	}
}

// RecommendedProducts is what the recommendation service answers for every analysis.
func RecommendedProducts() []entities.Product {
	return []entities.Product{
		{
			ID:       "rec-product-1",
			Name:     "Coral Sunset Lipstick",
			Brand:    "Glowyn",
			Price:    189000,
			ImageURL: photo("photo-1586495777744-4413f21062fa"),
			Rating:   4.8,
			Category: "Makeup",
		},
		{
			ID:       "rec-product-2",
			Name:     "Hydrating Serum",
			Brand:    "Glowyn Skin",
			Price:    299000,
			ImageURL: photo("photo-1620916566398-39f1143ab7be"),
			Rating:   4.9,
			Category: "Skincare",
		},
		{
			ID:       "rec-product-3",
			Name:     "Gold Hoop Earrings",
			Brand:    "Glowyn Accessories",
			Price:    249000,
			ImageURL: photo("photo-1630019852942-f89202989a59"),
			Rating:   4.7,
			Category: "Accessories",
		},
	}
}
