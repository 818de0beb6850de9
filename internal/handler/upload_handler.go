package handler

import (
	"errors"
	"io"
	"net/http"

	"food-kiosk/internal/upload"

	"github.com/rs/zerolog"
)

// UploadHandler relays uploaded images to the external hosting API.
type UploadHandler struct {
	uploader upload.Uploader
	logger   zerolog.Logger
}

// NewUploadHandler creates a new upload relay handler.
func NewUploadHandler(uploader upload.Uploader, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /upload requests. The image arrives as multipart
// field "image" and is forwarded as-is; the relay performs no validation
// beyond capping the request body.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Cap the body slightly above the image limit to absorb multipart
	// framing overhead.
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxImageSize+1<<20)

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file uploaded", h.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error during image upload", h.logger)
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}

	url, err := h.uploader.Upload(r.Context(), data, mediaType)
	if err != nil {
		var uploadErr *upload.UploadError
		if errors.As(err, &uploadErr) {
			writeError(w, http.StatusInternalServerError, "Image upload failed", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error during image upload", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image": url})
}
