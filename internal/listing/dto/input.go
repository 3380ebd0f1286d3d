package dto

import "github.com/fekuna/omnipos-marketplace-service/internal/query"

// ListingFilters are the page controls of the business and product listings.
type ListingFilters struct {
	Search       string   `mapstructure:"search"`
	Category     string   `mapstructure:"category"`
	Location     string   `mapstructure:"location"`
	PriceMin     *float64 `mapstructure:"price_min"`
	PriceMax     *float64 `mapstructure:"price_max"`
	OnlyOpen     bool     `mapstructure:"only_open"`
	OnlyVerified bool     `mapstructure:"only_verified"`
	InStockOnly  bool     `mapstructure:"in_stock_only"`
	Sort         string   `mapstructure:"sort"`
}

// Spec converts the filters into a query. A range with only one bound set
// takes the other from def; with neither set, def is used as is.
func (f *ListingFilters) Spec(def *query.PriceRange) query.Spec {
	spec := query.Spec{
		Search:       f.Search,
		Category:     f.Category,
		Location:     f.Location,
		OnlyOpen:     f.OnlyOpen,
		OnlyVerified: f.OnlyVerified,
		InStockOnly:  f.InStockOnly,
		SortKey:      query.SortKey(f.Sort),
	}

	switch {
	case f.PriceMin == nil && f.PriceMax == nil:
		spec.PriceRange = def
	default:
		r := query.PriceRange{}
		if def != nil {
			r = *def
		}
		if f.PriceMin != nil {
			r.Min = *f.PriceMin
		}
		if f.PriceMax != nil {
			r.Max = *f.PriceMax
		}
		spec.PriceRange = &r
	}
	return spec
}

type IDRequest struct {
	ID string `mapstructure:"id"`
}

type FacetsRequest struct {
	Kind string `mapstructure:"kind"`
}
