package query

import (
	"time"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

func price2(v float64) *float64 { return &v }

func sampleBusinesses() []model.Listable {
	return []model.Listable{
		&model.Business{ID: "1", Name: "Artisan Coffee Roasters", Description: "Premium coffee beans roasted daily.", Category: "Food & Beverage", Rating: 4.8, ReviewCount: 324, Location: "Downtown, San Francisco", IsOpen: true, Followers: 1250, IsVerified: true},
		&model.Business{ID: "2", Name: "Green Thumb Gardens", Description: "Sustainable gardening supplies and expert landscaping services.", Category: "Home & Garden", Rating: 4.9, ReviewCount: 187, Location: "Berkeley, CA", IsOpen: true, Followers: 890, IsVerified: true},
		&model.Business{ID: "3", Name: "Tech Repair Hub", Description: "Fast and reliable electronics repair.", Category: "Electronics", Rating: 4.7, ReviewCount: 445, Location: "Palo Alto, CA", IsOpen: false, Followers: 2100, IsVerified: true},
		&model.Business{ID: "4", Name: "Bella Vista Boutique", Description: "Curated fashion for the modern woman.", Category: "Fashion", Rating: 4.6, ReviewCount: 156, Location: "Union Square, San Francisco", IsOpen: true, Followers: 3200, IsVerified: false},
		&model.Business{ID: "5", Name: "Zen Wellness Spa", Description: "Holistic wellness treatments.", Category: "Health & Wellness", Rating: 4.9, ReviewCount: 298, Location: "Oakland, CA", IsOpen: true, Followers: 1800, IsVerified: true},
		&model.Business{ID: "6", Name: "Golden Gate Bakery", Description: "Fresh baked goods made daily.", Category: "Food & Beverage", Rating: 4.5, ReviewCount: 567, Location: "Richmond District, San Francisco", IsOpen: true, Followers: 2450, IsVerified: true},
	}
}

func sampleProducts() []model.Listable {
	return []model.Listable{
		&model.Product{ID: "1", Name: "Premium Ethiopian Coffee Blend", Description: "Single-origin coffee beans.", Price: 24.99, OriginalPrice: price2(29.99), Currency: "USD", Category: "Coffee", Location: "San Francisco, CA", InStock: true, Rating: 4.9, ReviewCount: 89, ListedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		&model.Product{ID: "2", Name: "Smart Plant Monitoring System", Description: "IoT device that tracks soil moisture.", Price: 79.99, Currency: "USD", Category: "Smart Garden", Location: "Berkeley, CA", InStock: true, Rating: 4.6, ReviewCount: 156},
		&model.Product{ID: "3", Name: "Wireless Charging Pad Pro", Description: "Fast wireless charging pad.", Price: 49.99, OriginalPrice: price2(69.99), Currency: "USD", Category: "Electronics", Location: "Palo Alto, CA", InStock: true, Rating: 4.5, ReviewCount: 234},
		&model.Product{ID: "4", Name: "handcrafted Ceramic Mug Set", Description: "Set of 4 ceramic mugs for coffee or tea lovers.", Price: 32.99, Currency: "USD", Category: "Home Decor", Location: "San Francisco, CA", InStock: true, Rating: 4.8, ReviewCount: 67, ListedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		&model.Product{ID: "5", Name: "Organic Face Serum", Description: "Natural anti-aging serum.", Price: 45.00, Currency: "USD", Category: "Beauty", Location: "Oakland, CA", InStock: false, Rating: 4.7, ReviewCount: 123},
		&model.Product{ID: "6", Name: "Vintage Leather Messenger Bag", Description: "Genuine leather messenger bag.", Price: 89.99, OriginalPrice: price2(120), Currency: "USD", Category: "Fashion", Location: "San Jose, CA", InStock: true, Rating: 4.6, ReviewCount: 198},
	}
}

func ids(items []model.Listable) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ListingID()
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
