package service

import (
	"context"

	"food-kiosk/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for managing the menu catalog.
type CatalogService interface {
	// GetAll retrieves the full catalog.
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetByName retrieves a catalog entry by its display name, or nil when
	// no entry matches.
	GetByName(ctx context.Context, name string) (*model.MenuItem, error)

	// Create validates the draft, hosts its image, and appends the
	// resulting item to the catalog.
	Create(ctx context.Context, draft *model.MenuItemDraft) (*model.MenuItem, error)

	// Update validates the draft, re-hosts its image, and replaces the
	// catalog entry with the given ID.
	Update(ctx context.Context, id uuid.UUID, draft *model.MenuItemDraft) (*model.MenuItem, error)

	// Delete removes the catalog entry with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines operations for the shopping cart. Every successful
// mutation persists the cart and notifies subscribed observers.
type CartService interface {
	// Items retrieves the current cart lines.
	Items(ctx context.Context) ([]model.CartLine, error)

	// AddOrUpdate stages an item with the given quantity, replacing any
	// existing line with the same name.
	AddOrUpdate(ctx context.Context, item model.MenuItem, quantity int) error

	// AdjustQuantity adds delta to the named line's quantity, dropping the
	// line when the result is zero or less.
	AdjustQuantity(ctx context.Context, name string, delta int) error

	// Remove drops the named line unconditionally.
	Remove(ctx context.Context, name string) error

	// Total returns the sum of price times quantity over all lines.
	Total(ctx context.Context) (float64, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error

	// Subscribe registers an observer for cart change notifications and
	// returns a function that cancels the subscription.
	Subscribe(fn func(model.CartSummary)) (cancel func())
}

// OrderService defines operations for placed orders.
type OrderService interface {
	// Checkout converts the current cart into an immutable order and
	// clears the cart.
	Checkout(ctx context.Context) (*model.Order, error)

	// GetAll retrieves all placed orders.
	GetAll(ctx context.Context) ([]model.Order, error)

	// Remove deletes the order with the given ID.
	Remove(ctx context.Context, id int64) error
}
