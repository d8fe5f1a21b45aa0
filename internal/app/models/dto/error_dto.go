package dto

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidToken ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken ErrorCode = "AUTH_006"
	ErrorCodeUnauthorized ErrorCode = "AUTH_008"
	ErrorCodeForbidden    ErrorCode = "AUTH_009"
	ErrorCodeRateLimited  ErrorCode = "AUTH_010"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_004"

	// Lifecycle errors
	ErrorCodeInvalidTransition ErrorCode = "STATE_001"
	ErrorCodeUnsupportedAction ErrorCode = "STATE_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	// Request errors
	ErrorCodeRequestCanceled ErrorCode = "REQ_001"

	// Server errors
	ErrorCodeInternalServer       ErrorCode = "SRV_001"
	ErrorCodeStorageError         ErrorCode = "SRV_002"
	ErrorCodeExternalServiceError ErrorCode = "SRV_003"
)

// StatusClientClosedRequest is reported when the caller abandons a request before it completes.
const StatusClientClosedRequest = 499

// ErrorDetail is the error object carried by every envelope.
// Code holds the HTTP-style status number, Type the application error code.
type ErrorDetail struct {
	Code    int         `json:"code" example:"404"`
	Type    ErrorCode   `json:"type,omitempty" example:"RES_001"`
	Message string      `json:"message" example:"event not found"`
	Field   string      `json:"field,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(status int, code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    status,
		Type:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// Error implements the error interface so a detail can travel as an error value.
func (e *ErrorDetail) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Type, e.Message)
}

// NotFoundDetail builds the 404 detail used by every lookup miss.
func NotFoundDetail(message string) *ErrorDetail {
	return NewErrorDetail(http.StatusNotFound, ErrorCodeResourceNotFound, message)
}

// InternalDetail builds the 500 detail used for unexpected failures.
func InternalDetail(message string) *ErrorDetail {
	return NewErrorDetail(http.StatusInternalServerError, ErrorCodeInternalServer, message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ErrorDetail `json:"errors"`
}

// NewValidationErrors creates a new validation errors container
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ErrorDetail, 0),
	}
}

// AddError adds a validation error to the container
func (v *ValidationErrors) AddError(field, message string) *ValidationErrors {
	v.Errors = append(v.Errors, ErrorDetail{
		Code:    http.StatusBadRequest,
		Type:    ErrorCodeValidationFailed,
		Message: message,
		Field:   field,
	})
	return v
}

// HasErrors checks if there are any validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// HandleValidationError converts validator output into a single 400 detail listing every failed field.
func HandleValidationError(err error) *ErrorDetail {
	detail := NewErrorDetail(http.StatusBadRequest, ErrorCodeValidationFailed, "Validation failed")

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return detail.WithDetails(err.Error())
	}

	collected := NewValidationErrors()
	for _, fe := range fieldErrors {
		collected.AddError(fe.Field(), formatFieldError(fe))
	}
	return detail.WithDetails(collected.Errors)
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// DetailFromError maps an application error to the envelope error it is reported as.
func DetailFromError(err error) *ErrorDetail {
	var detail *ErrorDetail
	if errors.As(err, &detail) {
		return detail
	}

	message := err.Error()
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return NewErrorDetail(http.StatusNotFound, ErrorCodeResourceNotFound, message)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		return NewErrorDetail(http.StatusConflict, ErrorCodeInvalidTransition, message).WithDetails(apperrors.DetailsOf(err))
	case errors.Is(err, apperrors.ErrUnsupportedAction):
		return NewErrorDetail(http.StatusBadRequest, ErrorCodeUnsupportedAction, message)
	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrCapacityReached):
		return NewErrorDetail(http.StatusConflict, ErrorCodeConflict, message)
	case errors.Is(err, apperrors.ErrValidationFailed):
		return NewErrorDetail(http.StatusBadRequest, ErrorCodeValidationFailed, message)
	case errors.Is(err, apperrors.ErrBadRequest):
		return NewErrorDetail(http.StatusBadRequest, ErrorCodeBadRequest, message)
	case apperrors.Is(err, apperrors.ErrUnauthorized, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return NewErrorDetail(http.StatusUnauthorized, ErrorCodeInvalidToken, message)
	case errors.Is(err, apperrors.ErrTokenExpired):
		return NewErrorDetail(http.StatusUnauthorized, ErrorCodeExpiredToken, message)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return NewErrorDetail(http.StatusForbidden, ErrorCodeForbidden, message)
	case errors.Is(err, apperrors.ErrRateLimited):
		return NewErrorDetail(http.StatusTooManyRequests, ErrorCodeRateLimited, message)
	case apperrors.Is(err, context.Canceled, context.DeadlineExceeded):
		return NewErrorDetail(StatusClientClosedRequest, ErrorCodeRequestCanceled, message)
	case apperrors.Is(err, apperrors.ErrStorage, apperrors.ErrSeedMalformed, apperrors.ErrSourceReadOnly):
		return NewErrorDetail(http.StatusInternalServerError, ErrorCodeStorageError, message)
	}
	return InternalDetail(message)
}
