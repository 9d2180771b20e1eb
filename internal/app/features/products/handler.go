// internal/app/features/products/handler.go
package products

import (
	productstore "github.com/circuitshop/circuitshop/internal/app/store/products"
	"go.uber.org/zap"
)

// Handler serves product creation and the filtered listing.
type Handler struct {
	Products *productstore.Store
	Log      *zap.Logger
}

func NewHandler(products *productstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Products: products, Log: logger}
}
