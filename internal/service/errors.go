package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/profilkantor/profile-api/internal/mapper"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/storage"
	"gorm.io/gorm"
)

// Error kinds. Every *Error matches exactly one of these with errors.Is.
var (
	// ErrValidation is returned when input is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a resource is not found or filtered out
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when credentials are missing or wrong
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the actor may not modify the resource
	ErrForbidden = errors.New("forbidden")
)

// Error is a service failure carrying a message that is safe to show to clients
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Validation creates an ErrValidation error
func Validation(message string) error { return newError(ErrValidation, message) }

// NotFound creates an ErrNotFound error
func NotFound(message string) error { return newError(ErrNotFound, message) }

// Conflict creates an ErrConflict error
func Conflict(message string) error { return newError(ErrConflict, message) }

// Unauthorized creates an ErrUnauthorized error
func Unauthorized(message string) error { return newError(ErrUnauthorized, message) }

// Forbidden creates an ErrForbidden error
func Forbidden(message string) error { return newError(ErrForbidden, message) }

// MessageOf returns the client message of a service error, or "" for
// unexpected errors whose text must not leak
func MessageOf(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return ""
}

// isDuplicate reports whether err is a unique constraint violation
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// isForeignKeyViolation reports whether err is a foreign key violation.
// The sqlite driver's error is not translated by gorm.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// lookupError maps a repository read error for one entity
func lookupError(err error, entity string) error {
	if repository.IsNotFound(err) {
		return NotFound(entity + " not found")
	}
	return fmt.Errorf("failed to get %s: %w", strings.ToLower(entity), err)
}

// writeError maps a repository write error; duplicates become conflictMsg
func writeError(err error, op, entity, conflictMsg string) error {
	switch {
	case repository.IsNotFound(err):
		return NotFound(entity + " not found")
	case conflictMsg != "" && isDuplicate(err):
		return &Error{Kind: ErrConflict, Message: conflictMsg, Err: err}
	case isForeignKeyViolation(err):
		return &Error{Kind: ErrConflict, Message: entity + " is referenced by other records", Err: err}
	default:
		return mapper.FormatError(strings.ToLower(entity), op, err)
	}
}

// uploadError maps a photo store failure. Client-side upload problems are
// validation errors; backend failures stay internal.
func uploadError(err error) error {
	if storage.IsUploadError(err) {
		msg := err.Error()
		return &Error{Kind: ErrValidation, Message: strings.ToUpper(msg[:1]) + msg[1:]}
	}
	return fmt.Errorf("failed to store photos: %w", err)
}
