package query

import (
	"github.com/montanaflynn/stats"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

// Facets summarises a listing set for sidebar counts and range sliders.
type Facets struct {
	Total      int            `json:"total"`
	Businesses int            `json:"businesses"`
	Products   int            `json:"products"`
	Open       int            `json:"open"`
	Verified   int            `json:"verified"`
	InStock    int            `json:"in_stock"`
	OutOfStock int            `json:"out_of_stock"`
	PriceMin   float64        `json:"price_min"`
	PriceMax   float64        `json:"price_max"`
	PriceMean  float64        `json:"price_mean"`
	RatingMean float64        `json:"rating_mean"`
	Categories map[string]int `json:"categories"`
	Locations  map[string]int `json:"locations"`
}

func Summarize(items []model.Listable) Facets {
	f := Facets{
		Categories: make(map[string]int),
		Locations:  make(map[string]int),
	}

	var prices, ratings stats.Float64Data
	for _, item := range items {
		fields, ok := fieldsOf(item)
		if !ok {
			continue
		}
		f.Total++
		if fields.category != "" {
			f.Categories[fields.category]++
		}
		if fields.location != "" {
			f.Locations[fields.location]++
		}

		switch v := item.(type) {
		case *model.Business:
			f.Businesses++
			if v.IsOpen {
				f.Open++
			}
			if v.IsVerified {
				f.Verified++
			}
			ratings = append(ratings, v.Rating)
		case *model.Product:
			f.Products++
			if v.InStock {
				f.InStock++
			} else {
				f.OutOfStock++
			}
			prices = append(prices, v.Price)
			ratings = append(ratings, v.Rating)
		}
	}

	if len(prices) > 0 {
		f.PriceMin, _ = prices.Min()
		f.PriceMax, _ = prices.Max()
		mean, _ := prices.Mean()
		f.PriceMean, _ = stats.Round(mean, 2)
	}
	if len(ratings) > 0 {
		mean, _ := ratings.Mean()
		f.RatingMean, _ = stats.Round(mean, 2)
	}
	return f
}
