package models

// APIResponse is the uniform envelope returned by every endpoint.
// swagger:model APIResponse
type APIResponse struct {
	// example: true
	Success bool `json:"success"`
	// example: QR code created successfully
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	// Field-level validation detail, present only on 400 responses
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError is one field-level validation failure.
// swagger:model FieldError
type FieldError struct {
	// example: title
	Field string `json:"field"`
	// example: Title is required
	Message string `json:"message"`
}
