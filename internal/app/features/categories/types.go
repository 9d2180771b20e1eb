// internal/app/features/categories/types.go
package categories

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

type createResponse struct {
	ID string `json:"id"`
}
