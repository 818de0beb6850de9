package upload

import (
	"context"
	"fmt"

	"food-kiosk/internal/model"
)

// MaxImageSize is the largest accepted image payload in bytes.
const MaxImageSize = 5_000_000

// Uploader hands raw image bytes to an external hosting service and returns
// the public URL of the hosted image. A single failed attempt surfaces
// directly to the caller; there is no retry logic.
type Uploader interface {
	Upload(ctx context.Context, image []byte, mediaType string) (string, error)
}

// UploadError carries the upstream status and message of a failed upload.
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed (status %d): %s", e.StatusCode, e.Message)
}

// ValidateImage applies the pre-upload checks the caller must enforce:
// JPEG or PNG only, at most MaxImageSize bytes. The uploaders themselves
// perform no validation and trust the upstream response.
func ValidateImage(mediaType string, size int64) error {
	if mediaType != "image/jpeg" && mediaType != "image/png" {
		return model.ErrInvalidImage
	}
	if size <= 0 || size > MaxImageSize {
		return model.ErrInvalidImage
	}
	return nil
}
