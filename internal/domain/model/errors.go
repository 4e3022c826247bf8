package model

import "errors"

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// Entity names used in not-found errors.
const (
	EntityMenu    = "menu"
	EntitySubmenu = "submenu"
	EntityDish    = "dish"
)

// NotFoundError reports that an entity id did not resolve in the store.
type NotFoundError struct {
	Entity string
}

// NewNotFoundError returns a not-found error for the given entity name.
func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
