package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrChecksumMismatch is wrapped by every ChecksumError raised when a
// recomputed checksum differs from the recorded one.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrorCategory classifies failures raised while checksumming inputs so
// callers can decide how to report or retry them.
type ErrorCategory int

const (
	// ErrorStorage covers opening, stating and reading inputs.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorDecode covers corrupt or truncated compressed inputs.
	ErrorDecode

	// ErrorMismatch marks data whose checksum differs from the expected value.
	ErrorMismatch

	// ErrorManifest covers unreadable or corrupt manifest files.
	ErrorManifest

	// ErrorCanceled marks work abandoned because its context ended.
	ErrorCanceled
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorDecode:
		return "decode"
	case ErrorMismatch:
		return "mismatch"
	case ErrorManifest:
		return "manifest"
	case ErrorCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ChecksumError describes a failure tied to one input.
type ChecksumError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// Creates a ChecksumError stamped with the current time.
func NewChecksumError(category ErrorCategory, op, path string, err error) *ChecksumError {
	return &ChecksumError{
		Err:       err,
		Path:      path,
		Operation: op,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *ChecksumError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsRetryAble reports whether repeating the operation could succeed.
func (e *ChecksumError) IsRetryAble() bool {
	switch e.Category {
	case ErrorStorage:
		// Transient I/O such as a busy network mount.
		return true
	case ErrorCanceled:
		return true
	default:
		return false
	}
}

// AsChecksumError extracts a ChecksumError from err, or returns nil.
func AsChecksumError(err error) *ChecksumError {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// ValidationError represents an error that occurs due to invalid input.
// It includes the field name, the invalid value, and the underlying error message.
type ValidationError struct {
	Value any    `json:"value"`
	Field string `json:"field"`
	Err   error  `json:"error"`
}

// NewValidationError creates a new ValidationError instance.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{Err: err, Field: field, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s (%v): %v", e.Field, e.Value, e.Err)
	}
	return "validation error"
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if a given error is of type ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError attempts to extract a ValidationError from a given error.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
