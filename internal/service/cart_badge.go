package service

import (
	"context"
	"sync"

	"food-kiosk/internal/model"
)

// CartBadge caches the latest cart summary so indicator views can read the
// current line and item counts without touching the cart service. It stays
// current by subscribing to the cart's change feed.
type CartBadge struct {
	mu      sync.RWMutex
	summary model.CartSummary
	cancel  func()
}

// NewCartBadge creates a badge primed from the current cart contents and
// subscribed to future changes.
func NewCartBadge(ctx context.Context, cart CartService) (*CartBadge, error) {
	lines, err := cart.Items(ctx)
	if err != nil {
		return nil, err
	}

	b := &CartBadge{summary: summarise(lines)}
	b.cancel = cart.Subscribe(b.update)
	return b, nil
}

// Summary returns the most recently observed cart summary.
func (b *CartBadge) Summary() model.CartSummary {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.summary
}

// Close cancels the badge's subscription.
func (b *CartBadge) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *CartBadge) update(summary model.CartSummary) {
	b.mu.Lock()
	b.summary = summary
	b.mu.Unlock()
}
