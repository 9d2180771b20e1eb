// internal/app/features/categories/routes.go
package categories

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /categories.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	return r
}
