// internal/app/features/products/routes.go
package products

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /products.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	return r
}
