package upload

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultImgBBEndpoint is the public imgbb upload endpoint.
const DefaultImgBBEndpoint = "https://api.imgbb.com/1/upload"

// imgBBUploader implements Uploader against the imgbb hosting API: the
// image is posted base64-encoded as form field "image", the API key rides
// as a query parameter, and the response carries a success flag and the
// hosted URL.
type imgBBUploader struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   zerolog.Logger
}

// imgBBResponse is the subset of the imgbb response the uploader reads.
type imgBBResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// NewImgBBUploader creates an imgbb-backed uploader. A non-positive timeout
// falls back to 30 seconds so a hung upstream cannot wedge a request
// indefinitely.
func NewImgBBUploader(endpoint, apiKey string, timeout time.Duration, logger zerolog.Logger) Uploader {
	if endpoint == "" {
		endpoint = DefaultImgBBEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &imgBBUploader{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With().Str("uploader", "imgbb").Logger(),
	}
}

// Upload posts the image and returns the hosted URL. On a transport
// failure, a non-2xx status, or success=false in the response body it
// returns an *UploadError.
func (u *imgBBUploader) Upload(ctx context.Context, image []byte, mediaType string) (string, error) {
	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(image))

	target := fmt.Sprintf("%s?key=%s", u.endpoint, url.QueryEscape(u.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		u.logger.Error().Err(err).Msg("upload request failed")
		return "", &UploadError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	var body imgBBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		u.logger.Error().Err(err).Int("status", resp.StatusCode).Msg("failed to decode upload response")
		return "", &UploadError{StatusCode: resp.StatusCode, Message: "unreadable upstream response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		u.logger.Warn().
			Int("status", resp.StatusCode).
			Bool("success", body.Success).
			Msg("upstream rejected upload")
		return "", &UploadError{StatusCode: resp.StatusCode, Message: "upstream reported failure"}
	}

	u.logger.Debug().
		Int("bytes", len(image)).
		Str("media_type", mediaType).
		Msg("image uploaded")

	return body.Data.URL, nil
}
