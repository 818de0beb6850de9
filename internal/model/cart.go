package model

// CartLine represents one item staged for purchase. There is at most one
// line per distinct item name.
type CartLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// CartSummary is the payload broadcast on every cart change, consumed by
// derived views such as the cart-size badge.
type CartSummary struct {
	Lines    int `json:"lines"`
	Quantity int `json:"quantity"`
}
