package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// MessageResponse acknowledges a write that returns no entity
type MessageResponse struct {
	Message string `json:"message"`
}
