package upload

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImgBBUploader_Success(t *testing.T) {
	image := []byte("fake image bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, r.ParseForm())
		decoded, err := base64.StdEncoding.DecodeString(r.PostFormValue("image"))
		require.NoError(t, err)
		assert.Equal(t, image, decoded)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "status": 200, "data": {"url": "http://img/burger.png"}}`))
	}))
	defer server.Close()

	uploader := NewImgBBUploader(server.URL, "test-key", 5*time.Second, zerolog.Nop())

	url, err := uploader.Upload(context.Background(), image, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://img/burger.png", url)
}

func TestImgBBUploader_UpstreamReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "status": 400}`))
	}))
	defer server.Close()

	uploader := NewImgBBUploader(server.URL, "test-key", 5*time.Second, zerolog.Nop())

	url, err := uploader.Upload(context.Background(), []byte("img"), "image/png")
	assert.Empty(t, url)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusOK, uploadErr.StatusCode)
}

func TestImgBBUploader_UpstreamHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "status": 500}`))
	}))
	defer server.Close()

	uploader := NewImgBBUploader(server.URL, "test-key", 5*time.Second, zerolog.Nop())

	_, err := uploader.Upload(context.Background(), []byte("img"), "image/png")

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusInternalServerError, uploadErr.StatusCode)
}

func TestImgBBUploader_UnreadableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	uploader := NewImgBBUploader(server.URL, "test-key", 5*time.Second, zerolog.Nop())

	_, err := uploader.Upload(context.Background(), []byte("img"), "image/png")

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "unreadable upstream response", uploadErr.Message)
}

func TestImgBBUploader_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	uploader := NewImgBBUploader(server.URL, "test-key", 5*time.Second, zerolog.Nop())

	_, err := uploader.Upload(context.Background(), []byte("img"), "image/png")

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, 0, uploadErr.StatusCode)
}

func TestImgBBUploader_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	uploader := NewImgBBUploader(server.URL, "test-key", 5*time.Second, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := uploader.Upload(ctx, []byte("img"), "image/png")
	assert.Error(t, err)
}
