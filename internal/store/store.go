package store

import "context"

// Keys under which application state is persisted. Each value is a JSON
// array (menu items, cart lines, orders respectively).
const (
	KeyMeals     = "meals"
	KeyCartItems = "cartItems"
	KeyOrders    = "orders"
)

// Store defines the persistent key-value adapter backing all application
// state. Load decodes the JSON value stored under key into dest; an absent
// key leaves dest untouched, so callers keep their zero value (an empty
// list). Save replaces the value under key with the JSON encoding of value.
// There is no transactional guarantee across keys.
type Store interface {
	Load(ctx context.Context, key string, dest any) error
	Save(ctx context.Context, key string, value any) error
}
