// Package query filters and orders business and product listings. Every
// function is pure: inputs are never mutated and no state survives a call.
package query

type SortKey string

const (
	SortRelevant     SortKey = "relevant"
	SortRating       SortKey = "rating"
	SortHighestRated SortKey = "highest-rated"
	SortPopular      SortKey = "popular"
	SortNewest       SortKey = "newest"
	SortPriceLow     SortKey = "price-low"
	SortPriceHigh    SortKey = "price-high"
	SortAlphabetical SortKey = "alphabetical"
	SortMostReviews  SortKey = "most-reviews"
)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// Valid is false for a nil range and for Min > Max; invalid ranges do not filter.
func (r *PriceRange) Valid() bool {
	return r != nil && r.Min <= r.Max
}

func (r *PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Spec is one listing query as collected from the page controls.
type Spec struct {
	Search   string `mapstructure:"search"`
	Category string `mapstructure:"category"` // "all" or empty disables
	Location string `mapstructure:"location"` // "all" or empty disables

	PriceRange *PriceRange `mapstructure:"price_range"` // products only

	OnlyOpen     bool `mapstructure:"only_open"`     // businesses only
	OnlyVerified bool `mapstructure:"only_verified"` // businesses only
	InStockOnly  bool `mapstructure:"in_stock_only"` // products only

	SortKey SortKey `mapstructure:"sort"`
}
