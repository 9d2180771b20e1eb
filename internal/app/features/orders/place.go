// internal/app/features/orders/place.go
package orders

import (
	"context"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/htmlsanitize"
	"github.com/circuitshop/circuitshop/internal/app/system/normalize"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"github.com/circuitshop/circuitshop/internal/domain/models"
)

// HandlePlace processes POST /orders. Totals are computed server-side from
// the submitted line items; stock levels are neither checked nor decremented,
// and user_id / product_id references are not verified.
func (h *Handler) HandlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := webutil.DecodeJSON(w, r, &req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := webutil.Validate(req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	items := req.modelItems()
	subtotal, tax, total := computeTotals(items)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	order := models.Order{
		UserID:          req.UserID,
		Email:           normalize.Email(req.Email),
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		Status:          models.StatusPlaced,
		Notes:           htmlsanitize.Sanitize(req.Notes),
		ShippingName:    req.ShippingName,
		ShippingAddress: req.ShippingAddress,
		ShippingPhone:   req.ShippingPhone,
	}
	orderID, err := h.Orders.Create(ctx, order)
	if err != nil {
		webutil.StoreError(w, h.Log, "orders: create failed", err)
		return
	}

	// One-way confirmation; log-only, never fails the order.
	h.Notifier.OrderPlaced(orderID, order.Email, total)

	webutil.JSON(w, http.StatusOK, placeResponse{OrderID: orderID, Total: total})
}

// computeTotals derives the order amounts from its line items:
// subtotal is the sum of quantity x unit_price, tax is fixed at zero
// (kept as-is from the source system), and total = subtotal + tax.
func computeTotals(items []models.OrderItem) (subtotal, tax, total float64) {
	for _, it := range items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}
	tax = 0
	total = subtotal + tax
	return subtotal, tax, total
}
