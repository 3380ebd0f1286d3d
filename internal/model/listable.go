package model

import (
	"errors"
	"fmt"
	"time"
)

type Kind string

const (
	KindBusiness Kind = "business"
	KindProduct  Kind = "product"
)

var ErrInvalidListing = errors.New("invalid listing")

// Listable is implemented only by *Business and *Product. Code that needs
// kind-specific fields switches on the concrete type.
type Listable interface {
	ListingID() string
	Kind() Kind
	Validate() error
	isListable()
}

func validateCommon(name string, rating float64, reviewCount int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}
	if rating < 0 || rating > 5 {
		return fmt.Errorf("%w: rating %.2f out of range [0,5]", ErrInvalidListing, rating)
	}
	if reviewCount < 0 {
		return fmt.Errorf("%w: negative review count %d", ErrInvalidListing, reviewCount)
	}
	return nil
}

// ListedAt returns the recency timestamp of an item, zero when unknown.
func ListedAt(item Listable) time.Time {
	switch v := item.(type) {
	case *Business:
		return v.ListedAt
	case *Product:
		return v.ListedAt
	}
	return time.Time{}
}
