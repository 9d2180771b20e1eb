// internal/app/features/diag/routes.go
package diag

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /test.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
