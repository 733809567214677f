package models

import "fmt"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Meal-specific errors
	ErrMealGone = "MEAL_DELETED"

	// Battle-specific errors
	ErrArenaFull              = "ARENA_FULL"
	ErrInsufficientCombatants = "INSUFFICIENT_COMBATANTS"
	ErrRandomUnavailable      = "RANDOM_UNAVAILABLE"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// DomainError is returned by the catalog, the arena and the random sources.
// Two DomainErrors match under errors.Is when their codes are equal.
type DomainError struct {
	Code    string // One of the error code constants above
	Message string // Human readable, names the offending id, name or value
	Cause   error  // Wrapped underlying error, may be nil
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

// Sentinels for errors.Is checks
var (
	ErrValidation              = &DomainError{Code: ErrValidationFailed}
	ErrMealConflict            = &DomainError{Code: ErrConflict}
	ErrMealNotFound            = &DomainError{Code: ErrNotFound}
	ErrMealDeleted             = &DomainError{Code: ErrMealGone}
	ErrCapacity                = &DomainError{Code: ErrArenaFull}
	ErrNotEnoughCombatants     = &DomainError{Code: ErrInsufficientCombatants}
	ErrRandomSourceUnavailable = &DomainError{Code: ErrRandomUnavailable}
)

// NewValidationError reports malformed input
func NewValidationError(format string, args ...interface{}) *DomainError {
	return &DomainError{Code: ErrValidationFailed, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError reports a duplicate active meal name
func NewConflictError(name string) *DomainError {
	return &DomainError{Code: ErrConflict, Message: fmt.Sprintf("meal with name '%s' already exists", name)}
}

// NewNotFoundError reports a meal that never existed
func NewNotFoundError(format string, args ...interface{}) *DomainError {
	return &DomainError{Code: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewGoneError reports a meal that exists but has been soft-deleted
func NewGoneError(format string, args ...interface{}) *DomainError {
	return &DomainError{Code: ErrMealGone, Message: fmt.Sprintf(format, args...)}
}

// NewCapacityError reports a full arena
func NewCapacityError() *DomainError {
	return &DomainError{Code: ErrArenaFull, Message: "combatant list is full, cannot prep more meals"}
}

// NewInsufficientCombatantsError reports a battle started without two combatants
func NewInsufficientCombatantsError(count int) *DomainError {
	return &DomainError{
		Code:    ErrInsufficientCombatants,
		Message: fmt.Sprintf("two combatants must be prepped for a battle, have %d", count),
	}
}

// NewRandomUnavailableError reports a failed or invalid random draw
func NewRandomUnavailableError(message string, cause error) *DomainError {
	return &DomainError{Code: ErrRandomUnavailable, Message: message, Cause: cause}
}
