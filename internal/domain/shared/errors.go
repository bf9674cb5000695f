package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// NotFoundError reports that an entity with a given identity does not exist.
// Entity is the display name ("Product", "Order", "OrderItem") and Suffix
// carries the punctuation the client contract expects after "not found".
type NotFoundError struct {
	Entity string
	ID     uint
	Suffix string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found%s", e.Entity, e.ID, e.Suffix)
}

// NewNotFoundError creates a NotFoundError for the given entity and identity
func NewNotFoundError(entity string, id uint, suffix string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id, Suffix: suffix}
}

// ErrNotFound is the repository-level sentinel for missing rows. Services
// translate it into a NotFoundError carrying the entity and id.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
