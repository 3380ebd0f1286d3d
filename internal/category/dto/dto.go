package dto

import "github.com/fekuna/omnipos-marketplace-service/internal/model"

type CategoryFilters struct {
	Kind  model.Kind  `mapstructure:"kind"`
	Facet model.Facet `mapstructure:"facet"` // empty returns both facets
}

type CategoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"` // what the page sends back as the filter
	Facet string `json:"facet"`
	Count int    `json:"count"`
}

type ListCategoriesResponse struct {
	Kind       string          `json:"kind"`
	Categories []*CategoryView `json:"categories"`
	Locations  []*CategoryView `json:"locations"`
}
