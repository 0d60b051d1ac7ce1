// Package apperror provides the domain error types for the media pipeline.
// Each error carries an HTTP status code, a machine-readable type and a
// message safe to return to the admin UI. Infrastructure errors are wrapped,
// never returned to the client raw.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the base type for all domain errors.
type AppError struct {
	// Code is the HTTP status code the presentation layer should answer with.
	Code int `json:"-"`

	// Type is a machine-readable classifier (e.g. "unprocessable_media").
	Type string `json:"type"`

	// Message is a human-readable description safe for the client.
	Message string `json:"message"`

	// Internal holds the underlying error for logging only.
	Internal error `json:"-"`
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}

	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewUnprocessableMedia reports bytes that claim to be a decodable media type
// but cannot be decoded. The upload is rejected and no document is created.
func NewUnprocessableMedia(message string, cause error) *AppError {
	return &AppError{
		Code:     http.StatusUnprocessableEntity,
		Type:     "unprocessable_media",
		Message:  message,
		Internal: cause,
	}
}

// NewPayloadTooLarge reports an upload exceeding the configured size ceiling.
// Raised before any storage write happens.
func NewPayloadTooLarge(limit int64) *AppError {
	return &AppError{
		Code:    http.StatusRequestEntityTooLarge,
		Type:    "payload_too_large",
		Message: fmt.Sprintf("upload exceeds the %d byte limit", limit),
	}
}

// NewDuplicateID reports an identity collision in the media collection. With
// UUID allocation this is unreachable in practice and treated as an internal
// invariant violation.
func NewDuplicateID(id string, cause error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Type:     "duplicate_id",
		Message:  fmt.Sprintf("media id %q already exists", id),
		Internal: cause,
	}
}

func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Type:    "not_found",
		Message: message,
	}
}

// NewStorageUnavailable reports an unreachable blob store backend.
func NewStorageUnavailable(cause error) *AppError {
	return &AppError{
		Code:     http.StatusServiceUnavailable,
		Type:     "storage_unavailable",
		Message:  "object storage is unavailable",
		Internal: cause,
	}
}

func NewInternal(cause error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Type:     "internal",
		Message:  "internal error",
		Internal: cause,
	}
}

// IsType reports whether err is an AppError with the given type classifier.
func IsType(err error, typ string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == typ
	}

	return false
}

// IsNotFound is a shorthand for the read paths that treat absence as routine.
func IsNotFound(err error) bool {
	return IsType(err, "not_found")
}
