package dto

// BusinessView is a business card as rendered on the listing page.
type BusinessView struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"review_count"`
	ReviewLabel    string  `json:"review_label"`
	Location       string  `json:"location"`
	IsOpen         bool    `json:"is_open"`
	Followers      int     `json:"followers"`
	FollowersLabel string  `json:"followers_label"`
	IsVerified     bool    `json:"is_verified"`
}

type ProductView struct {
	ID                 string   `json:"id"`
	Kind               string   `json:"kind"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	PriceLabel         string   `json:"price_label"`
	OriginalPrice      *float64 `json:"original_price,omitempty"`
	OriginalPriceLabel string   `json:"original_price_label,omitempty"`
	DiscountPercent    int      `json:"discount_percent"`
	Currency           string   `json:"currency"`
	Category           string   `json:"category"`
	BusinessID         string   `json:"business_id"`
	BusinessName       string   `json:"business_name"`
	Location           string   `json:"location"`
	InStock            bool     `json:"in_stock"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	ReviewLabel        string   `json:"review_label"`
	IsNew              bool     `json:"is_new"`
	IsFeatured         bool     `json:"is_featured"`
}

type ListResponse struct {
	Items    []any  `json:"items"`
	Total    int    `json:"total"`
	Matched  int    `json:"matched"`
	Sort     string `json:"sort"`
	Fallback bool   `json:"fallback"`
}
