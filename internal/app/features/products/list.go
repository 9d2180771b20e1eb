// internal/app/features/products/list.go
package products

import (
	"context"
	"net/http"
	"strconv"

	productstore "github.com/circuitshop/circuitshop/internal/app/store/products"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
)

// HandleList processes GET /products with optional query parameters:
// category_id and subcategory_id (exact match), q (case-insensitive
// substring match on name), and limit (default 100). Absent parameters
// impose no constraint.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	opts := listOptionsFromQuery(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	prods, err := h.Products.List(ctx, opts)
	if err != nil {
		webutil.StoreError(w, h.Log, "products: list failed", err)
		return
	}

	webutil.JSON(w, http.StatusOK, prods)
}

// listOptionsFromQuery builds the listing constraints from the URL query.
// A missing or unparsable limit falls back to the store default.
func listOptionsFromQuery(r *http.Request) productstore.ListOptions {
	q := r.URL.Query()
	opts := productstore.ListOptions{
		CategoryID:    q.Get("category_id"),
		SubcategoryID: q.Get("subcategory_id"),
		Query:         q.Get("q"),
	}
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	return opts
}
