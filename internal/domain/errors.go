package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates an entity id is absent
	NotFoundError struct {
		Kind string
		ID   int64
	}

	// ValidationError indicates invalid form input
	ValidationError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is lets errors.Is match NotFoundError against ErrNotFound
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Is lets errors.Is match ValidationError against ErrValidation
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpload       = errors.New("upload failed")
)

// ConflictError represents a unique or referential constraint that blocked a write
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // project, developer, user
	ResourceID   int64  // 0 when unknown
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// UploadError reports a disk failure while storing an uploaded file
type UploadError struct {
	Op     string // mkdir, create, copy
	SubDir string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s %s: %v", e.Op, e.SubDir, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

func (e *UploadError) StatusCode() int { return http.StatusInternalServerError }

// Is allows errors.Is() to match against ErrUpload
func (e *UploadError) Is(target error) bool {
	return target == ErrUpload
}
