package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		configuredKey  string
		method         string
		path           string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "No key configured leaves mutations open",
			configuredKey:  "",
			method:         http.MethodPost,
			path:           "/api/menu",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Valid key on mutation",
			configuredKey:  "secret-key",
			method:         http.MethodPost,
			path:           "/api/menu",
			providedKey:    "secret-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing key on mutation",
			configuredKey:  "secret-key",
			method:         http.MethodDelete,
			path:           "/api/menu/abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid key on mutation",
			configuredKey:  "secret-key",
			method:         http.MethodPut,
			path:           "/api/menu/abc",
			providedKey:    "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Menu reads are never gated",
			configuredKey:  "secret-key",
			method:         http.MethodGet,
			path:           "/api/menu",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Upload relay is never gated",
			configuredKey:  "secret-key",
			method:         http.MethodPost,
			path:           "/upload",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Checkout is never gated",
			configuredKey:  "secret-key",
			method:         http.MethodPost,
			path:           "/api/orders",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAuth(tt.configuredKey, logger)(okHandler())

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set("X-API-Key", tt.providedKey)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORS_Preflight(t *testing.T) {
	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	handler := CORS(next)

	req := httptest.NewRequest(http.MethodOptions, "/api/menu", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, handlerCalled)
}

func TestRecovery(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	handler := Recovery(zerolog.Nop())(panicking)

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
}

func TestLogging_PassesThroughStatus(t *testing.T) {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handler := Logging(zerolog.Nop())(notFound)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/missing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
