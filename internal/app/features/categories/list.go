// internal/app/features/categories/list.go
package categories

import (
	"context"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// HandleList processes GET /categories. The response is a mapping from
// parent_id to the categories directly under that parent, with roots under
// the "" key.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		webutil.StoreError(w, h.Log, "categories: list failed", err)
		return
	}

	webutil.JSON(w, http.StatusOK, groupByParent(cats))
}

// groupByParent buckets categories by their direct parent_id. This is a
// single-level grouping, not a recursive tree build: a grandchild appears
// under its own parent's key, never nested inside the grandparent's entry.
// Order within each bucket follows store-native retrieval order.
func groupByParent(cats []models.Category) map[string][]models.Category {
	byParent := make(map[string][]models.Category)
	for _, c := range cats {
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}
	return byParent
}
