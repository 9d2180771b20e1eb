// internal/app/features/products/types.go
package products

// createRequest mirrors the Product schema. Price uses a pointer so a
// missing price is distinguishable from an explicit 0 (0 is a valid price);
// in_stock uses a pointer so absence defaults to true.
type createRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	SKU           string   `json:"sku,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	CategoryID    string   `json:"category_id" validate:"required"`
	SubcategoryID string   `json:"subcategory_id,omitempty"`
	InStock       *bool    `json:"in_stock,omitempty"`
	StockQty      *int     `json:"stock_qty,omitempty" validate:"omitempty,gte=0"`
}

type createResponse struct {
	ID string `json:"id"`
}
