package router

import (
	"net/http"
	"strings"

	"food-kiosk/internal/handler"
	"food-kiosk/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	uploadHandler *handler.UploadHandler,
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Image upload relay
	mux.HandleFunc("/upload", uploadHandler.Upload)

	// Menu catalog routes
	menuRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Requests addressing a specific item carry its ID in the path
		if r.URL.Path != "/api/menu" && r.URL.Path != "/api/menu/" {
			switch r.Method {
			case http.MethodPut:
				menuHandler.Update(w, r)
			case http.MethodDelete:
				menuHandler.Delete(w, r)
			default:
				http.Error(w, "not found", http.StatusNotFound)
			}
			return
		}

		if r.Method == http.MethodPost {
			menuHandler.Create(w, r)
			return
		}
		menuHandler.GetAll(w, r)
	}

	// Register menu routes (both with and without trailing slash)
	mux.HandleFunc("/api/menu", menuRouteHandler)
	mux.HandleFunc("/api/menu/", menuRouteHandler)

	// Cart routes
	mux.HandleFunc("/api/cart/count", cartHandler.Count)

	cartItemsHandler := func(w http.ResponseWriter, r *http.Request) {
		// Line-level requests carry the line name in the path
		if strings.HasPrefix(r.URL.Path, "/api/cart/items/") && r.URL.Path != "/api/cart/items/" {
			switch r.Method {
			case http.MethodPatch:
				cartHandler.AdjustItem(w, r)
			case http.MethodDelete:
				cartHandler.RemoveItem(w, r)
			default:
				http.Error(w, "not found", http.StatusNotFound)
			}
			return
		}

		if r.Method == http.MethodPost {
			cartHandler.AddItem(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/cart/items", cartItemsHandler)
	mux.HandleFunc("/api/cart/items/", cartItemsHandler)

	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			cartHandler.Clear(w, r)
			return
		}
		cartHandler.Get(w, r)
	})

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/") {
			orderHandler.Checkout(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			orderHandler.Remove(w, r)
			return
		}

		orderHandler.GetAll(w, r)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminAuth
	var h http.Handler = mux
	h = middleware.AdminAuth(adminAPIKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
