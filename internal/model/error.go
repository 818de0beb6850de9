package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeInvalidImage    = "INVALID_IMAGE"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeItemNotFound    = "ITEM_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingField    = NewDomainError(ErrCodeMissingField, "All fields are required, including the image")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must be zero or greater")
	ErrInvalidImage    = NewDomainError(ErrCodeInvalidImage, "Image must be JPEG or PNG and at most 5MB")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrItemNotFound    = NewDomainError(ErrCodeItemNotFound, "Item not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cannot checkout an empty cart")
)
