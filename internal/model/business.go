package model

import (
	"fmt"
	"time"
)

type Business struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Location    string    `json:"location"`
	IsOpen      bool      `json:"is_open"`
	Followers   int       `json:"followers"`
	IsVerified  bool      `json:"is_verified"`
	ListedAt    time.Time `json:"listed_at"` // zero when the fixture carries no date
}

func (b *Business) ListingID() string { return b.ID }

func (b *Business) Kind() Kind { return KindBusiness }

func (b *Business) Validate() error {
	if err := validateCommon(b.Name, b.Rating, b.ReviewCount); err != nil {
		return err
	}
	if b.Followers < 0 {
		return fmt.Errorf("%w: negative followers %d", ErrInvalidListing, b.Followers)
	}
	return nil
}

func (b *Business) isListable() {}
