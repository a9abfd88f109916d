package dto

// Envelope is the success shape shared by every endpoint:
// {"status": "success", "message": ..., "data": ...}
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(message string, data interface{}) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the 422 response body.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// StatusError is the 400/401 response body.
type StatusError struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// MessageResponse is the 404 response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// GenericError is the 500 response body; internal detail never leaks.
type GenericError struct {
	Error string `json:"error"`
}
