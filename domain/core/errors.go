package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// File errors
	ErrFileAccess      = errors.New("file access failed")
	ErrNoColumns       = errors.New("no columns to parse from file")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrTooManyFields   = errors.New("too many fields in row")
	ErrInvalidEncoding = errors.New("invalid utf-8 text")
)

// FileAccessError reports a file that could not be opened or read. It is
// fatal to that file's analysis only.
type FileAccessError struct {
	Path  string
	Cause error
}

func (e *FileAccessError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("cannot read %s", e.Path)
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Cause)
}

func (e *FileAccessError) Unwrap() error {
	return e.Cause
}

// Is matches ErrFileAccess so callers can test the kind without a type switch
func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

// Error constructors with context
func NewFileAccessError(path string, cause error) error {
	return &FileAccessError{Path: path, Cause: cause}
}

func NewTooManyFieldsError(line, expected, saw int) error {
	return fmt.Errorf("%w: expected %d fields in line %d, saw %d", ErrTooManyFields, expected, line, saw)
}

func NewInvalidEncodingError(line int) error {
	return fmt.Errorf("%w in line %d", ErrInvalidEncoding, line)
}

// Error checking helpers
func IsFileAccessError(err error) bool {
	return errors.Is(err, ErrFileAccess)
}
