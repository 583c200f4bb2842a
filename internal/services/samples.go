package service

import "github.com/katana-forge/storefront/internal/models"

// sampleProducts seeds an empty catalog. Matches the storefront's "Load
// sample products" action.
var sampleProducts = []models.CreateProductRequest{
	{
		Name:          "Hattori Classic",
		Description:   "Elegant, balanced, and razor-sharp. Perfect for display or practice.",
		Steel:         "1095 High Carbon",
		BladeLengthCM: 72,
		Price:         499,
		Stock:         8,
		Rating:        4.8,
		Images:        []string{},
	},
	{
		Name:          "Kage Shadow",
		Description:   "Matte black finish with full tang construction for durability.",
		Steel:         "T10 Tool Steel",
		BladeLengthCM: 73.5,
		Price:         629,
		Stock:         5,
		Rating:        4.7,
		Images:        []string{},
	},
	{
		Name:          "Tsuru Crane",
		Description:   "Hand-polished hamon with ornate tsuka-ito wrap.",
		Steel:         "Folded Damascus",
		BladeLengthCM: 71,
		Price:         899,
		Stock:         3,
		Rating:        4.9,
		Images:        []string{},
	},
}
