package request

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	Code  string `json:"code" binding:"required,min=1,max=100"`
	Name  string `json:"name" binding:"required,min=2,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=50"`
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
}
