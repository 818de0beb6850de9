package service

import (
	"context"
	"fmt"
	"time"

	"food-kiosk/internal/model"
	"food-kiosk/internal/store"
	"food-kiosk/internal/upload"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	store    store.Store
	uploader upload.Uploader
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st store.Store, uploader upload.Uploader, logger zerolog.Logger) CatalogService {
	return &catalogService{
		store:    st,
		uploader: uploader,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// GetAll retrieves the full catalog.
func (s *catalogService) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	items := []model.MenuItem{}
	if err := s.store.Load(ctx, store.KeyMeals, &items); err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalog")
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return items, nil
}

// GetByName retrieves a catalog entry by its display name.
func (s *catalogService) GetByName(ctx context.Context, name string) (*model.MenuItem, error) {
	items, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}

	s.logger.Debug().Str("name", name).Msg("menu item not found")
	return nil, nil
}

// Create validates the draft, hosts its image, and appends the resulting
// item to the catalog. Validation runs before any upload is attempted, and
// a failed upload leaves the catalog unchanged.
func (s *catalogService) Create(ctx context.Context, draft *model.MenuItemDraft) (*model.MenuItem, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	imageURL, err := s.uploader.Upload(ctx, draft.Image, draft.ImageType)
	if err != nil {
		s.logger.Warn().Err(err).Str("name", draft.Name).Msg("image upload failed")
		return nil, err
	}

	items, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	item := model.MenuItem{
		ID:          uuid.New(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       *draft.Price,
		Image:       imageURL,
		CreatedAt:   time.Now(),
	}

	items = append(items, item)
	if err := s.store.Save(ctx, store.KeyMeals, items); err != nil {
		s.logger.Error().Err(err).Str("name", item.Name).Msg("failed to persist catalog")
		return nil, fmt.Errorf("failed to persist catalog: %w", err)
	}

	s.logger.Info().
		Str("item_id", item.ID.String()).
		Str("name", item.Name).
		Msg("menu item created")

	return &item, nil
}

// Update validates the draft, re-hosts its image, and replaces the entry
// with the given ID, preserving its identity and creation time. The image
// is re-uploaded unconditionally, matching the create path.
func (s *catalogService) Update(ctx context.Context, id uuid.UUID, draft *model.MenuItemDraft) (*model.MenuItem, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	items, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range items {
		if items[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.logger.Debug().Str("item_id", id.String()).Msg("menu item not found")
		return nil, model.ErrItemNotFound
	}

	imageURL, err := s.uploader.Upload(ctx, draft.Image, draft.ImageType)
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", id.String()).Msg("image upload failed")
		return nil, err
	}

	item := model.MenuItem{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       *draft.Price,
		Image:       imageURL,
		CreatedAt:   items[index].CreatedAt,
	}

	items[index] = item
	if err := s.store.Save(ctx, store.KeyMeals, items); err != nil {
		s.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to persist catalog")
		return nil, fmt.Errorf("failed to persist catalog: %w", err)
	}

	s.logger.Info().
		Str("item_id", item.ID.String()).
		Str("name", item.Name).
		Msg("menu item updated")

	return &item, nil
}

// Delete removes the entry with the given ID and persists immediately.
func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	items, err := s.GetAll(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}

	if len(remaining) == len(items) {
		s.logger.Debug().Str("item_id", id.String()).Msg("menu item not found")
		return model.ErrItemNotFound
	}

	if err := s.store.Save(ctx, store.KeyMeals, remaining); err != nil {
		s.logger.Error().Err(err).Str("item_id", id.String()).Msg("failed to persist catalog")
		return fmt.Errorf("failed to persist catalog: %w", err)
	}

	s.logger.Info().Str("item_id", id.String()).Msg("menu item deleted")
	return nil
}

// validateDraft checks that every required field is present before any
// upload is attempted.
func (s *catalogService) validateDraft(draft *model.MenuItemDraft) error {
	if draft == nil ||
		draft.Name == "" ||
		draft.Description == "" ||
		draft.Price == nil ||
		len(draft.Image) == 0 {
		return model.ErrMissingField
	}

	if *draft.Price < 0 {
		return model.ErrInvalidPrice
	}

	if err := upload.ValidateImage(draft.ImageType, int64(len(draft.Image))); err != nil {
		return err
	}

	return nil
}
