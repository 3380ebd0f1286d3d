package model

import (
	"fmt"
	"math"
	"time"
)

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price"` // Nullable
	Currency      string    `json:"currency"`
	Category      string    `json:"category"`
	BusinessID    string    `json:"business_id"`
	BusinessName  string    `json:"business_name"`
	Location      string    `json:"location"`
	InStock       bool      `json:"in_stock"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	IsNew         bool      `json:"is_new"`
	IsFeatured    bool      `json:"is_featured"`
	ListedAt      time.Time `json:"listed_at"`
}

func (p *Product) ListingID() string { return p.ID }

func (p *Product) Kind() Kind { return KindProduct }

func (p *Product) Validate() error {
	if err := validateCommon(p.Name, p.Rating, p.ReviewCount); err != nil {
		return err
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price %.2f", ErrInvalidListing, p.Price)
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		return fmt.Errorf("%w: original price %.2f below price %.2f", ErrInvalidListing, *p.OriginalPrice, p.Price)
	}
	return nil
}

// DiscountPercent is the whole-percent markdown from OriginalPrice, 0 when not discounted.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price || *p.OriginalPrice == 0 {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

func (p *Product) isListable() {}
