// internal/app/features/products/create.go
package products

import (
	"context"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/htmlsanitize"
	"github.com/circuitshop/circuitshop/internal/app/system/normalize"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"github.com/circuitshop/circuitshop/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCreate processes POST /products. category_id is checked only for
// being a well-formed ObjectID hex string; whether such a category exists is
// never verified.
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

	if _, err := primitive.ObjectIDFromHex(req.CategoryID); err != nil {
		webutil.Error(w, http.StatusBadRequest, "Invalid category_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	prod := models.Product{
		Name:          normalize.Name(req.Name),
		Description:   htmlsanitize.Sanitize(req.Description),
		Price:         *req.Price,
		SKU:           req.SKU,
		ImageURL:      req.ImageURL,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		InStock:       inStock,
		StockQty:      req.StockQty,
	}
	id, err := h.Products.Create(ctx, prod)
	if err != nil {
		webutil.StoreError(w, h.Log, "products: create failed", err)
		return
	}

	webutil.JSON(w, http.StatusOK, createResponse{ID: id})
}
