package msg

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeInvalidColor indicates a custom prefix color outside 1-255
	ErrTypeInvalidColor ErrorType = iota
	// ErrTypeUnknownKind indicates a kind name that matches no built-in prefix
	ErrTypeUnknownKind
	// ErrTypeWriteFailure indicates the output stream rejected a write
	ErrTypeWriteFailure
	// ErrTypeReadFailure indicates the prompt could not read an answer
	ErrTypeReadFailure
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidColor:
		return "Invalid Color"
	case ErrTypeUnknownKind:
		return "Unknown Kind"
	case ErrTypeWriteFailure:
		return "Write Failure"
	case ErrTypeReadFailure:
		return "Read Failure"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// PrintError is returned when a message cannot be built or printed.
type PrintError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *PrintError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *PrintError) Unwrap() error {
	return e.Err
}

// NewInvalidColorError creates an error for a custom color outside 1-255.
func NewInvalidColorError(color int) *PrintError {
	return &PrintError{
		Type:    ErrTypeInvalidColor,
		Message: fmt.Sprintf("color %d is outside 1-255", color),
	}
}

// NewUnknownKindError creates an error for an unrecognised kind name.
func NewUnknownKindError(name string) *PrintError {
	return &PrintError{
		Type:    ErrTypeUnknownKind,
		Message: fmt.Sprintf("unknown message kind %q", name),
	}
}

// NewWriteError wraps a failed write to stream.
func NewWriteError(stream Stream, err error) *PrintError {
	return &PrintError{
		Type:    ErrTypeWriteFailure,
		Message: "writing to " + stream.String(),
		Err:     err,
	}
}

// NewReadError wraps a failed read of a prompt answer.
func NewReadError(err error) *PrintError {
	return &PrintError{
		Type:    ErrTypeReadFailure,
		Message: "reading answer from stdin",
		Err:     err,
	}
}

func isType(err error, t ErrorType) bool {
	var pe *PrintError
	if errors.As(err, &pe) {
		return pe.Type == t
	}
	return false
}

// IsInvalidColor checks if an error is an invalid color error
func IsInvalidColor(err error) bool {
	return isType(err, ErrTypeInvalidColor)
}

// IsUnknownKind checks if an error is an unknown kind error
func IsUnknownKind(err error) bool {
	return isType(err, ErrTypeUnknownKind)
}

// IsWriteFailure checks if an error is a write failure
func IsWriteFailure(err error) bool {
	return isType(err, ErrTypeWriteFailure)
}

// IsReadFailure checks if an error is a read failure
func IsReadFailure(err error) bool {
	return isType(err, ErrTypeReadFailure)
}
