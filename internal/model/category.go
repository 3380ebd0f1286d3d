package model

const CategoryAll = "all"

type Facet string

const (
	FacetCategory Facet = "category"
	FacetLocation Facet = "location"
)

// Category is a sidebar filter option. Match (defaulting to ID) is what the
// page sends as the filter value; it is matched as a case-insensitive
// substring of the listing field, and "all" disables the filter.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Match string `json:"match"`
	Kind  Kind   `json:"kind"`
	Facet Facet  `json:"facet"`
	Count int    `json:"count"`
}

func (c Category) FilterValue() string {
	if c.Match != "" {
		return c.Match
	}
	return c.ID
}
