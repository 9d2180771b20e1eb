// internal/app/features/categories/create.go
package categories

import (
	"context"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/htmlsanitize"
	"github.com/circuitshop/circuitshop/internal/app/system/normalize"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// HandleCreate processes POST /categories. The parent reference is stored
// as-is: no existence check, no cycle detection. A dangling parent_id simply
// produces an orphan group in the listing.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := webutil.DecodeJSON(w, r, &req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := webutil.Validate(req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cat := models.Category{
		Name:        normalize.Name(req.Name),
		ParentID:    req.ParentID,
		Description: htmlsanitize.Sanitize(req.Description),
	}
	id, err := h.Categories.Create(ctx, cat)
	if err != nil {
		webutil.StoreError(w, h.Log, "categories: create failed", err)
		return
	}

	webutil.JSON(w, http.StatusOK, createResponse{ID: id})
}
