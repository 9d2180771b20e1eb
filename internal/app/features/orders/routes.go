// internal/app/features/orders/routes.go
package orders

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /orders.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandlePlace)
	return r
}
