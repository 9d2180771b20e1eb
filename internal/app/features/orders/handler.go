// internal/app/features/orders/handler.go
package orders

import (
	orderstore "github.com/circuitshop/circuitshop/internal/app/store/orders"
	"github.com/circuitshop/circuitshop/internal/app/system/notify"
	"go.uber.org/zap"
)

// Handler serves order placement.
type Handler struct {
	Orders   *orderstore.Store
	Notifier *notify.Notifier
	Log      *zap.Logger
}

func NewHandler(orders *orderstore.Store, notifier *notify.Notifier, logger *zap.Logger) *Handler {
	return &Handler{Orders: orders, Notifier: notifier, Log: logger}
}
