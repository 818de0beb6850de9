package model

import "time"

// Order is an immutable snapshot of a cart taken at checkout. Items are
// value copies; later cart mutations never affect a placed order.
type Order struct {
	ID          int64      `json:"id"`
	Items       []CartLine `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
}
