// internal/domain/models/product.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. CategoryID and SubcategoryID are stored as plain
// hex strings; the category id is format-checked at creation but existence in
// the category collection is never verified.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	SKU           string             `bson:"sku,omitempty" json:"sku,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CategoryID    string             `bson:"category_id" json:"category_id"`
	SubcategoryID string             `bson:"subcategory_id,omitempty" json:"subcategory_id,omitempty"`
	InStock       bool               `bson:"in_stock" json:"in_stock"`
	StockQty      *int               `bson:"stock_qty,omitempty" json:"stock_qty,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
