// internal/domain/models/order.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a line item. Name and UnitPrice are snapshots taken at order
// time so later catalog edits do not retroactively change historical orders.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
}

// Order is a purchase record, written once at placement and never mutated.
// Subtotal, Tax, and Total are server-computed; client-supplied totals are
// ignored.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	Email    string             `bson:"email" json:"email"`
	Items    []OrderItem        `bson:"items" json:"items"`
	Subtotal float64            `bson:"subtotal" json:"subtotal"`
	Tax      float64            `bson:"tax" json:"tax"`
	Total    float64            `bson:"total" json:"total"`
	Status   string             `bson:"status" json:"status"`

	Notes           string `bson:"notes,omitempty" json:"notes,omitempty"`
	ShippingName    string `bson:"shipping_name,omitempty" json:"shipping_name,omitempty"`
	ShippingAddress string `bson:"shipping_address,omitempty" json:"shipping_address,omitempty"`
	ShippingPhone   string `bson:"shipping_phone,omitempty" json:"shipping_phone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// StatusPlaced is the status assigned to every new order.
const StatusPlaced = "placed"
