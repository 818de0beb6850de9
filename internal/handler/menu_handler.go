package handler

import (
	"io"
	"net/http"
	"strconv"

	"food-kiosk/internal/model"
	"food-kiosk/internal/service"
	"food-kiosk/internal/upload"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MenuHandler handles menu catalog HTTP requests.
type MenuHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.CatalogService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// GetAll handles GET /api/menu requests.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	items, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/menu requests. The item arrives as a multipart
// form: name, description, price, and an image file.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	draft, ok := h.parseDraft(w, r)
	if !ok {
		return
	}

	item, err := h.service.Create(r.Context(), draft)
	if err != nil {
		writeDomainError(w, err, "failed to create menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/menu/{id} requests.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	draft, ok := h.parseDraft(w, r)
	if !ok {
		return
	}

	item, err := h.service.Update(r.Context(), id, draft)
	if err != nil {
		writeDomainError(w, err, "failed to update menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu/{id} requests.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete menu item", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the item ID from a /api/menu/{id} path.
func (h *MenuHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	path := r.URL.Path
	if len(path) <= len("/api/menu/") {
		writeError(w, http.StatusBadRequest, "menu item ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(path[len("/api/menu/"):])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item ID format", h.logger)
		return uuid.Nil, false
	}

	return id, true
}

// parseDraft reads a menu item draft from a multipart form. Missing fields
// are left zero-valued so the service reports them as a single validation
// failure.
func (h *MenuHandler) parseDraft(w http.ResponseWriter, r *http.Request) (*model.MenuItemDraft, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxImageSize+1<<20)

	if err := r.ParseMultipartForm(upload.MaxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return nil, false
	}

	draft := &model.MenuItemDraft{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid price", h.logger)
			return nil, false
		}
		draft.Price = &price
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusBadRequest, "failed to read image", h.logger)
			return nil, false
		}
		draft.Image = data
		draft.ImageType = header.Header.Get("Content-Type")
		if draft.ImageType == "" {
			draft.ImageType = http.DetectContentType(data)
		}
	}

	return draft, true
}
