// internal/app/features/categories/handler.go
package categories

import (
	categorystore "github.com/circuitshop/circuitshop/internal/app/store/categories"
	"go.uber.org/zap"
)

// Handler serves category creation and the grouped listing.
type Handler struct {
	Categories *categorystore.Store
	Log        *zap.Logger
}

func NewHandler(categories *categorystore.Store, logger *zap.Logger) *Handler {
	return &Handler{Categories: categories, Log: logger}
}
