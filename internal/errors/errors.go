// internal/errors/errors.go
package appErrors

import "fmt"

// ValidationError reports a missing, oversized or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError for field with a user facing message.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError is returned when no record with the given id exists.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// Helper constructors
func NewCustomerNotFound(id int) error {
	return &NotFoundError{Resource: "Customer", ID: id}
}

func NewProductNotFound(id int) error {
	return &NotFoundError{Resource: "Product", ID: id}
}
