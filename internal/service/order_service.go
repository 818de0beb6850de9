package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"food-kiosk/internal/model"
	"food-kiosk/internal/store"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	store  store.Store
	cart   CartService
	logger zerolog.Logger

	mu     sync.Mutex
	lastID int64
}

// NewOrderService creates a new order service.
func NewOrderService(st store.Store, cart CartService, logger zerolog.Logger) OrderService {
	return &orderService{
		store:  st,
		cart:   cart,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// Checkout converts the current cart into an immutable order, appends it to
// the order list, and clears the cart. An empty cart is rejected; a
// zero-value order is never produced.
func (s *orderService) Checkout(ctx context.Context) (*model.Order, error) {
	lines, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		s.logger.Warn().Msg("checkout attempted with empty cart")
		return nil, model.ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}

	// Snapshot the lines by value so later cart mutations cannot reach
	// into the placed order.
	items := make([]model.CartLine, len(lines))
	copy(items, lines)

	now := time.Now()
	order := model.Order{
		ID:          s.nextID(now),
		Items:       items,
		TotalAmount: total,
		CreatedAt:   now,
	}

	orders, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	orders = append(orders, order)
	if err := s.store.Save(ctx, store.KeyOrders, orders); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to persist orders")
		return nil, fmt.Errorf("failed to persist orders: %w", err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to clear cart after checkout")
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Float64("total", order.TotalAmount).
		Msg("order placed")

	return &order, nil
}

// GetAll retrieves all placed orders.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := s.store.Load(ctx, store.KeyOrders, &orders); err != nil {
		s.logger.Error().Err(err).Msg("failed to load orders")
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// Remove deletes the order with the given ID and persists.
func (s *orderService) Remove(ctx context.Context, id int64) error {
	orders, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if order.ID != id {
			remaining = append(remaining, order)
		}
	}

	if len(remaining) == len(orders) {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return model.ErrOrderNotFound
	}

	if err := s.store.Save(ctx, store.KeyOrders, remaining); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to persist orders")
		return fmt.Errorf("failed to persist orders: %w", err)
	}

	s.logger.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}

// nextID derives an order ID from the creation timestamp in milliseconds,
// bumping past the previous ID when two checkouts land in the same
// millisecond so IDs stay strictly monotonic within the process.
func (s *orderService) nextID(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
