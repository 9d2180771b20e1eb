// internal/app/features/orders/types.go
package orders

import "github.com/circuitshop/circuitshop/internal/domain/models"

// orderItem is a line-item snapshot supplied by the client: name and
// unit_price are captured as-sent, with no lookup against the catalog.
// unit_price uses a pointer so 0 (free item) passes "required".
type orderItem struct {
	ProductID string   `json:"product_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
	UnitPrice *float64 `json:"unit_price" validate:"required,gte=0"`
}

type placeRequest struct {
	UserID          string      `json:"user_id" validate:"required"`
	Email           string      `json:"email" validate:"required,email"`
	Items           []orderItem `json:"items" validate:"required,min=1,dive"`
	Notes           string      `json:"notes,omitempty"`
	ShippingName    string      `json:"shipping_name,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	ShippingPhone   string      `json:"shipping_phone,omitempty"`
}

type placeResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

func (r placeRequest) modelItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: *it.UnitPrice,
		})
	}
	return items
}
