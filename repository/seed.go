package repository

import (
	"time"

	"storefront/models"
)

// Seed data for a fresh store: the demo catalog, the known user directory
// and a few historical sales so the financials view has something to chart.

func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Minimalist Watch",
			Description: "A sleek, modern timepiece for the urban professional. Features a genuine leather strap and sapphire crystal glass.",
			Price:       129.99,
			Category:    "Accessories",
			Image:       "https://picsum.photos/id/175/400/400",
			Stock:       45,
		},
		{
			ID:          "2",
			Name:        "Wireless Noise-Cancelling Headphones",
			Description: "Immerse yourself in high-fidelity audio with active noise cancellation. 30-hour battery life.",
			Price:       249.50,
			Category:    "Electronics",
			Image:       "https://picsum.photos/id/4/400/400",
			Stock:       20,
		},
		{
			ID:          "3",
			Name:        "Organic Cotton Hoodie",
			Description: "Sustainably sourced, ultra-soft hoodie available in earth tones. Perfect for casual wear.",
			Price:       59.00,
			Category:    "Apparel",
			Image:       "https://picsum.photos/id/1005/400/400",
			Stock:       100,
		},
		{
			ID:          "4",
			Name:        "Ergonomic Office Chair",
			Description: "Designed for all-day comfort with lumbar support and breathable mesh back.",
			Price:       350.00,
			Category:    "Furniture",
			Image:       "https://picsum.photos/id/1080/400/400",
			Stock:       8,
		},
		{
			ID:          "5",
			Name:        "Ceramic Coffee Pour-Over Set",
			Description: "Hand-crafted ceramic dripper and carafe for the perfect morning brew.",
			Price:       45.00,
			Category:    "Home",
			Image:       "https://picsum.photos/id/30/400/400",
			Stock:       30,
		},
	}
}

func SeedUsers() []models.User {
	now := time.Now().UTC()
	return []models.User{
		{
			ID:         "admin-1",
			Name:       "Sarah Admin",
			Email:      "sarah@lumina.com",
			Role:       models.RoleAdmin,
			Avatar:     "https://i.pravatar.cc/150?u=admin",
			LastActive: now,
		},
		{
			ID:         "user-1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Role:       models.RoleUser,
			Avatar:     "https://i.pravatar.cc/150?u=john",
			LastActive: now.Add(-24 * time.Hour),
		},
		{
			ID:         "user-2",
			Name:       "Alice Smith",
			Email:      "alice@example.com",
			Role:       models.RoleUser,
			Avatar:     "https://i.pravatar.cc/150?u=alice",
			LastActive: now,
		},
	}
}

func SeedSales() []models.Sale {
	products := SeedProducts()
	now := time.Now().UTC()
	return []models.Sale{
		{
			ID:          "sale-1",
			UserID:      "user-1",
			UserName:    "John Doe",
			Items:       []models.CartItem{{Product: products[0], Quantity: 1}},
			TotalAmount: 129.99,
			Date:        now.Add(-48 * time.Hour),
		},
		{
			ID:          "sale-2",
			UserID:      "user-2",
			UserName:    "Alice Smith",
			Items:       []models.CartItem{{Product: products[2], Quantity: 2}},
			TotalAmount: 118.00,
			Date:        now.Add(-24 * time.Hour),
		},
		{
			ID:          "sale-3",
			UserID:      "user-1",
			UserName:    "John Doe",
			Items:       []models.CartItem{{Product: products[1], Quantity: 1}},
			TotalAmount: 249.50,
			Date:        now,
		},
	}
}
