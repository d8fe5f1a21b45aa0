package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrCapacityReached  = errors.New("capacity reached")

	// Lifecycle errors
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnsupportedAction = errors.New("unsupported action")

	// Authentication errors
	ErrUnauthorized  = errors.New("unauthorized")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrRateLimited      = errors.New("rate limit exceeded")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Storage errors
var (
	ErrStorage          = errors.New("storage failure")
	ErrSeedMalformed    = errors.New("malformed seed data")
	ErrSourceReadOnly   = errors.New("data source is read-only")
	ErrCollectionAbsent = errors.New("collection not present in source")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewInvalidTransitionError reports an action that the entity's lifecycle does not allow from its current status.
func NewInvalidTransitionError(entity, from, action string) error {
	return (&CustomError{
		Err:     ErrInvalidTransition,
		Message: fmt.Sprintf("cannot %s %s in status %q", action, entity, from),
	}).WithDetails(map[string]interface{}{
		"entity": entity,
		"from":   from,
		"action": action,
	})
}

// NewInvalidStatusChangeError reports a direct status edit that no lifecycle action allows.
func NewInvalidStatusChangeError(entity, from, to string) error {
	return (&CustomError{
		Err:     ErrInvalidTransition,
		Message: fmt.Sprintf("%s cannot move from status %q to %q", entity, from, to),
	}).WithDetails(map[string]interface{}{
		"entity": entity,
		"from":   from,
		"to":     to,
	})
}

// NewUnsupportedActionError reports an action that an entity does not define.
func NewUnsupportedActionError(entity, action string) error {
	return &CustomError{
		Err:     ErrUnsupportedAction,
		Message: fmt.Sprintf("%s does not support action %q", entity, action),
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// DetailsOf returns the details attached to the first CustomError in err's chain.
func DetailsOf(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}
