package service

import (
	"context"
	"testing"

	"food-kiosk/internal/model"
	"food-kiosk/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartBadge_PrimesFromExistingCart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	cart := NewCartService(st, zerolog.Nop())

	require.NoError(t, cart.AddOrUpdate(ctx, burger(), 2))
	require.NoError(t, cart.AddOrUpdate(ctx, fries(), 1))

	badge, err := NewCartBadge(ctx, cart)
	require.NoError(t, err)
	defer badge.Close()

	assert.Equal(t, model.CartSummary{Lines: 2, Quantity: 3}, badge.Summary())
}

func TestCartBadge_TracksCartChanges(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	badge, err := NewCartBadge(ctx, cart)
	require.NoError(t, err)
	defer badge.Close()

	assert.Equal(t, model.CartSummary{}, badge.Summary())

	require.NoError(t, cart.AddOrUpdate(ctx, burger(), 4))
	assert.Equal(t, model.CartSummary{Lines: 1, Quantity: 4}, badge.Summary())

	require.NoError(t, cart.Clear(ctx))
	assert.Equal(t, model.CartSummary{Lines: 0, Quantity: 0}, badge.Summary())
}

func TestCartBadge_CloseStopsTracking(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	badge, err := NewCartBadge(ctx, cart)
	require.NoError(t, err)

	require.NoError(t, cart.AddOrUpdate(ctx, burger(), 1))
	badge.Close()

	require.NoError(t, cart.AddOrUpdate(ctx, burger(), 9))
	assert.Equal(t, model.CartSummary{Lines: 1, Quantity: 1}, badge.Summary())
}
