// Package errors provides standardized error handling for the scheme
// recommendation engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Eligibility evaluation errors.
	ErrCodeEligibilityDataIntegrity ErrorCode = "ELIGIBILITY_DATA_INTEGRITY"

	// Catalog and profile input errors.
	ErrCodeCatalogReadFailed       ErrorCode = "CATALOG_READ_FAILED"
	ErrCodeCatalogValidationFailed ErrorCode = "CATALOG_VALIDATION_FAILED"
	ErrCodeProfileValidationFailed ErrorCode = "PROFILE_VALIDATION_FAILED"
	ErrCodeProfileReadFailed       ErrorCode = "PROFILE_READ_FAILED"
	ErrCodePreferencesInvalid      ErrorCode = "PREFERENCES_INVALID"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// NewDataIntegrityError flags an eligibility record missing a required
// dimension. Fatal to that single scheme's evaluation, never to the whole
// ranking pass.
func NewDataIntegrityError(schemeID string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEligibilityDataIntegrity,
		Message:   "Eligibility record is missing a required dimension",
		Details:   cause.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"schemeId": schemeID},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewCatalogReadFailedError wraps a catalog file read failure.
func NewCatalogReadFailedError(path string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogReadFailed,
		Message:   "Failed to read scheme catalog",
		Details:   fmt.Sprintf("path: %s, error: %s", path, cause.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewCatalogValidationFailedError wraps a schema validation failure on a
// catalog document.
func NewCatalogValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogValidationFailed,
		Message:   "Scheme catalog failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileValidationFailedError wraps an invalid profile snapshot.
func NewProfileValidationFailedError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileValidationFailed,
		Message:   "User profile failed validation",
		Details:   cause.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewProfileReadFailedError wraps a profile file read failure.
func NewProfileReadFailedError(path string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileReadFailed,
		Message:   "Failed to read user profile",
		Details:   fmt.Sprintf("path: %s, error: %s", path, cause.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewPreferencesInvalidError flags unusable ranking preferences.
func NewPreferencesInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePreferencesInvalid,
		Message:   "Recommendation preferences are invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsDataIntegrity reports whether err is (or wraps) a data-integrity error.
func IsDataIntegrity(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == ErrCodeEligibilityDataIntegrity
	}
	return false
}

// CodeOf extracts the error code, defaulting to INTERNAL_ERROR for
// unclassified errors.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeInternal
}
