package handler

import (
	"encoding/json"
	"net/http"

	"food-kiosk/internal/model"
	"food-kiosk/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles shopping cart HTTP requests.
type CartHandler struct {
	cart    service.CartService
	catalog service.CatalogService
	badge   *service.CartBadge
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart service.CartService, catalog service.CatalogService, badge *service.CartBadge, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		badge:   badge,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the payload for GET /api/cart.
type cartResponse struct {
	Items []model.CartLine `json:"items"`
	Total float64          `json:"total"`
}

// addItemRequest is the payload for POST /api/cart/items. The item itself
// is resolved from the catalog by name.
type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// adjustRequest is the payload for PATCH /api/cart/items/{name}.
type adjustRequest struct {
	Delta int `json:"delta"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	items, err := h.cart.Items(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve cart", h.logger)
		return
	}

	total, err := h.cart.Total(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cartResponse{Items: items, Total: total})
}

// Count handles GET /api/cart/count requests, served from the badge's
// cached summary.
func (h *CartHandler) Count(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.badge.Summary())
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.catalog.GetByName(r.Context(), req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resolve menu item", h.logger)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "menu item not found", h.logger)
		return
	}

	if err := h.cart.AddOrUpdate(r.Context(), *item, req.Quantity); err != nil {
		writeDomainError(w, err, "failed to add item to cart", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdjustItem handles PATCH /api/cart/items/{name} requests.
func (h *CartHandler) AdjustItem(w http.ResponseWriter, r *http.Request) {
	name, ok := h.parseName(w, r)
	if !ok {
		return
	}

	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.cart.AdjustQuantity(r.Context(), name, req.Delta); err != nil {
		writeDomainError(w, err, "failed to adjust quantity", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/cart/items/{name} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	name, ok := h.parseName(w, r)
	if !ok {
		return
	}

	if err := h.cart.Remove(r.Context(), name); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to remove item", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseName extracts the line name from a /api/cart/items/{name} path.
func (h *CartHandler) parseName(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := r.URL.Path
	if len(path) <= len("/api/cart/items/") {
		writeError(w, http.StatusBadRequest, "item name is required", h.logger)
		return "", false
	}

	return path[len("/api/cart/items/"):], true
}
