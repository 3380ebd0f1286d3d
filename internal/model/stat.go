package model

// Stat is a home page headline figure such as {"Active Businesses", "25,000+"}.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
