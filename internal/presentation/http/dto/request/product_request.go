package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Code     string  `json:"code" binding:"required,min=1,max=100"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Quantity *int     `json:"quantity"`
}
