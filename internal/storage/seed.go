package storage

import (
	"github.com/example/electromart/internal/models"
	"github.com/example/electromart/internal/utils"
)

// seed loads the sample catalog and the admin account. The admin gets
// id 1; customer ids start after it.
func (s *MemStorage) seed() {
	for _, input := range sampleProducts() {
		_, _ = s.CreateProduct(input)
	}

	hash, _ := utils.HashPassword("admin123")
	s.users[1] = models.User{ID: 1, Username: "admin", Password: hash}
	s.nextUserID = 2
}

func sampleProducts() []models.ProductInput {
	return []models.ProductInput{
		{
			Name:        "iPhone 13 Pro",
			Description: "The latest iPhone with A15 Bionic chip, 128GB, Sierra Blue, triple-camera system",
			Price:       99999,
			OldPrice:    floatPtr(109999),
			Category:    "Smartphones",
			ImageURL:    "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?auto=format&fit=crop&w=800&q=80",
			Rating:      4.5,
			ReviewCount: 124,
			Stock:       10,
			Features:    []string{"A15 Bionic chip", "128GB storage", "Triple-camera system", "ProMotion display"},
			Badges:      []string{"New"},
			IsNew:       true,
			IsFeatured:  true,
		},
		{
			Name:        "MacBook Pro",
			Description: "Powerful laptop with M1 Pro chip, 16GB RAM, 512GB SSD, 14-inch Retina display",
			Price:       149999,
			OldPrice:    floatPtr(169999),
			Category:    "Laptops",
			ImageURL:    "https://images.unsplash.com/photo-1587033411391-5d9e51cce126?auto=format&fit=crop&w=800&q=80",
			Rating:      5,
			ReviewCount: 89,
			Stock:       5,
			Features:    []string{"M1 Pro chip", "16GB RAM", "512GB SSD", "14-inch Retina display"},
			Badges:      []string{"Sale"},
			IsFeatured:  true,
		},
		{
			Name:        "Sony WH-1000XM4",
			Description: "Premium wireless noise-cancelling headphones with industry-leading technology",
			Price:       24999,
			OldPrice:    floatPtr(29999),
			Category:    "Audio",
			ImageURL:    "https://images.unsplash.com/photo-1585123334904-845d60e97b29?auto=format&fit=crop&w=800&q=80",
			Rating:      5,
			ReviewCount: 215,
			Stock:       15,
			Features:    []string{"Industry-leading noise cancellation", "30-hour battery life", "Touch controls", "Speak-to-chat technology"},
			IsFeatured:  true,
		},
		{
			Name:        "Galaxy Watch 4",
			Description: "Advanced smartwatch with health monitoring, GPS, and fitness tracking features",
			Price:       19999,
			OldPrice:    floatPtr(22999),
			Category:    "Wearables",
			ImageURL:    "https://images.unsplash.com/photo-1583394838336-acd977736f90?auto=format&fit=crop&w=800&q=80",
			Rating:      4,
			ReviewCount: 76,
			Stock:       8,
			Features:    []string{"Health monitoring", "GPS", "Fitness tracking", "44mm size"},
			Badges:      []string{"Popular"},
			IsFeatured:  true,
		},
		{
			Name:        "Samsung QLED TV",
			Description: "55-inch 4K Ultra HD Smart TV with Quantum Processor and HDR",
			Price:       84999,
			Category:    "Televisions",
			ImageURL:    "https://images.unsplash.com/photo-1605464315542-bda3e2f4e605?auto=format&fit=crop&w=800&q=80",
			Rating:      4,
			ReviewCount: 32,
			Stock:       3,
			Features:    []string{"4K Ultra HD", "Quantum Processor", "HDR", "Smart TV"},
			Badges:      []string{"New"},
			IsNew:       true,
		},
		{
			Name:        "iPad Air",
			Description: "Powerful and versatile tablet with M1 chip, 64GB storage, and Wi-Fi connectivity",
			Price:       54999,
			Category:    "Tablets",
			ImageURL:    "https://images.unsplash.com/photo-1600086827875-a63b01f1335c?auto=format&fit=crop&w=800&q=80",
			Rating:      4.5,
			ReviewCount: 47,
			Stock:       12,
			Features:    []string{"M1 chip", "10.9-inch display", "64GB storage", "Wi-Fi"},
			Badges:      []string{"New"},
			IsNew:       true,
		},
		{
			Name:        "Google Nest Hub",
			Description: "Smart home display with Google Assistant for controlling your smart home devices",
			Price:       7999,
			Category:    "Smart Home",
			ImageURL:    "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?auto=format&fit=crop&w=800&q=80",
			Rating:      5,
			ReviewCount: 19,
			Stock:       7,
			Features:    []string{"Google Assistant", "Smart home controls", "7-inch display", "Video calls"},
			Badges:      []string{"New"},
			IsNew:       true,
		},
		{
			Name:        "Samsung Galaxy Buds Pro",
			Description: "True wireless earbuds with active noise cancellation and immersive sound",
			Price:       12999,
			Category:    "Audio",
			ImageURL:    "https://images.unsplash.com/photo-1628815113969-0484d74e6df2?auto=format&fit=crop&w=800&q=80",
			Rating:      4,
			ReviewCount: 24,
			Stock:       9,
			Features:    []string{"Active noise cancellation", "360 Audio", "IPX7 water resistance", "8-hour battery life"},
			Badges:      []string{"New"},
			IsNew:       true,
		},
		{
			Name:        "Canon EOS R5",
			Description: "Professional mirrorless camera with 45MP full-frame sensor and 8K video recording",
			Price:       339999,
			OldPrice:    floatPtr(359999),
			Category:    "Cameras",
			ImageURL:    "https://images.unsplash.com/photo-1516724562728-afc824a36e84?auto=format&fit=crop&w=800&q=80",
			Rating:      4.8,
			ReviewCount: 56,
			Stock:       2,
			Features:    []string{"45MP full-frame sensor", "8K video", "In-body image stabilization", "Dual Pixel CMOS AF"},
		},
		{
			Name:        "Dell XPS 13",
			Description: "Ultra-thin laptop with InfinityEdge display, 11th Gen Intel Core i7, and 16GB RAM",
			Price:       129999,
			OldPrice:    floatPtr(139999),
			Category:    "Laptops",
			ImageURL:    "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?auto=format&fit=crop&w=800&q=80",
			Rating:      4.7,
			ReviewCount: 102,
			Stock:       6,
			Features:    []string{"11th Gen Intel Core i7", "16GB RAM", "512GB SSD", "InfinityEdge display"},
		},
		{
			Name:        "Bose QuietComfort Earbuds",
			Description: "True wireless noise cancelling earbuds with high-fidelity audio and secure fit",
			Price:       21999,
			OldPrice:    floatPtr(24999),
			Category:    "Audio",
			ImageURL:    "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?auto=format&fit=crop&w=800&q=80",
			Rating:      4.6,
			ReviewCount: 83,
			Stock:       11,
			Features:    []string{"Noise cancellation", "High-fidelity audio", "Secure fit", "Weather-resistant"},
			Badges:      []string{"Sale"},
		},
		{
			Name:        "LG 34-inch UltraWide Monitor",
			Description: "Professional curved monitor with 34-inch UltraWide QHD display and HDR 10",
			Price:       49999,
			OldPrice:    floatPtr(54999),
			Category:    "Monitors",
			ImageURL:    "https://images.unsplash.com/photo-1616763355548-1b606f439f86?auto=format&fit=crop&w=800&q=80",
			Rating:      4.4,
			ReviewCount: 37,
			Stock:       4,
			Features:    []string{"34-inch UltraWide QHD", "HDR 10", "AMD FreeSync", "Curved display"},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
