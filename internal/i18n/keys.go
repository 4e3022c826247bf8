package i18n

import "github.com/guttosm/menu-service/internal/domain/model"

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidID indicates a path parameter that is not a UUID.
	ErrKeyInvalidID = "error.invalid_id"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyServiceUnavailable indicates a backing store is unreachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyMenuNotFound indicates the menu id did not resolve.
	ErrKeyMenuNotFound = "error.menu_not_found"
	// ErrKeySubmenuNotFound indicates the submenu id did not resolve under its menu.
	ErrKeySubmenuNotFound = "error.submenu_not_found"
	// ErrKeyDishNotFound indicates the dish id did not resolve under its submenu.
	ErrKeyDishNotFound = "error.dish_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// NotFoundKey returns the translation key for a not-found entity.
func NotFoundKey(entity string) string {
	switch entity {
	case model.EntityMenu:
		return ErrKeyMenuNotFound
	case model.EntitySubmenu:
		return ErrKeySubmenuNotFound
	case model.EntityDish:
		return ErrKeyDishNotFound
	default:
		return ErrKeyNotFound
	}
}
