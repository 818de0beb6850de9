package service

import (
	"context"
	"fmt"
	"sync"

	"food-kiosk/internal/model"
	"food-kiosk/internal/store"

	"github.com/rs/zerolog"
)

// cartService implements CartService. Observers are notified synchronously
// after every successful mutation; delivery is fire-and-forget and purely
// in-process.
type cartService struct {
	store  store.Store
	logger zerolog.Logger

	mu        sync.Mutex
	observers map[int]func(model.CartSummary)
	nextObsID int
}

// NewCartService creates a new cart service.
func NewCartService(st store.Store, logger zerolog.Logger) CartService {
	return &cartService{
		store:     st,
		logger:    logger.With().Str("service", "cart").Logger(),
		observers: make(map[int]func(model.CartSummary)),
	}
}

// Items retrieves the current cart lines.
func (s *cartService) Items(ctx context.Context) ([]model.CartLine, error) {
	lines := []model.CartLine{}
	if err := s.store.Load(ctx, store.KeyCartItems, &lines); err != nil {
		s.logger.Error().Err(err).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return lines, nil
}

// AddOrUpdate stages an item with the given quantity. Any existing line
// with the same name is removed first, so restaging an item replaces its
// quantity rather than summing.
func (s *cartService) AddOrUpdate(ctx context.Context, item model.MenuItem, quantity int) error {
	if quantity < 1 {
		s.logger.Warn().Str("name", item.Name).Int("quantity", quantity).Msg("invalid quantity")
		return model.ErrInvalidQuantity
	}

	lines, err := s.Items(ctx)
	if err != nil {
		return err
	}

	updated := make([]model.CartLine, 0, len(lines)+1)
	for _, line := range lines {
		if line.Name != item.Name {
			updated = append(updated, line)
		}
	}
	updated = append(updated, model.CartLine{
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: quantity,
	})

	return s.persist(ctx, updated)
}

// AdjustQuantity adds delta to the named line's quantity. A resulting
// quantity of zero or less drops the line entirely.
func (s *cartService) AdjustQuantity(ctx context.Context, name string, delta int) error {
	lines, err := s.Items(ctx)
	if err != nil {
		return err
	}

	found := false
	updated := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Name == name {
			found = true
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		updated = append(updated, line)
	}

	if !found {
		s.logger.Debug().Str("name", name).Msg("cart line not found")
		return model.ErrItemNotFound
	}

	return s.persist(ctx, updated)
}

// Remove drops the named line unconditionally.
func (s *cartService) Remove(ctx context.Context, name string) error {
	lines, err := s.Items(ctx)
	if err != nil {
		return err
	}

	updated := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Name != name {
			updated = append(updated, line)
		}
	}

	return s.persist(ctx, updated)
}

// Total returns the sum of price times quantity over all lines.
func (s *cartService) Total(ctx context.Context) (float64, error) {
	lines, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total, nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	return s.persist(ctx, []model.CartLine{})
}

// Subscribe registers an observer for cart change notifications.
func (s *cartService) Subscribe(fn func(model.CartSummary)) (cancel func()) {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// persist saves the new cart state and notifies observers with the derived
// summary. Observers are only notified after a successful save.
func (s *cartService) persist(ctx context.Context, lines []model.CartLine) error {
	if err := s.store.Save(ctx, store.KeyCartItems, lines); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	summary := summarise(lines)

	s.mu.Lock()
	observers := make([]func(model.CartSummary), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(summary)
	}

	s.logger.Debug().
		Int("lines", summary.Lines).
		Int("quantity", summary.Quantity).
		Msg("cart updated")

	return nil
}

func summarise(lines []model.CartLine) model.CartSummary {
	summary := model.CartSummary{Lines: len(lines)}
	for _, line := range lines {
		summary.Quantity += line.Quantity
	}
	return summary
}
