package handlers

// ErrorResponse is the error body shared by every handler
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Item not found
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	// example: Item deleted successfully
	Message string `json:"message"`
}
