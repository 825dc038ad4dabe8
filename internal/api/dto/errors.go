package dto

// APIError is the JSON error envelope for all non-2xx responses.
type APIError struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail holds a machine-readable code and a human-readable
// message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError creates an error response.
func NewAPIError(code, message string) APIError {
	return APIError{Error: ErrorDetail{Code: code, Message: message}}
}

// Common error codes.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeNotFound       = "not_found"
	CodeConflict       = "conflict"
	CodeInternal       = "internal_error"
)
