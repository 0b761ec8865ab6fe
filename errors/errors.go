// Package errors provides standardized error handling patterns for gltfkit.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping and classification across the library.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorMissingMember represents errors caused by a required JSON member
	// being absent from the input
	ErrorMissingMember ErrorClass = iota
	// ErrorSchema represents errors caused by a malformed field shape or type
	ErrorSchema
	// ErrorReference represents referential-integrity failures: unresolved
	// ids, undeclared extension usage, or name collisions
	ErrorReference
	// ErrorNoHandler represents a dispatch attempt that found no codec for
	// the owner's exact runtime kind
	ErrorNoHandler
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorMissingMember:
		return "missing-member"
	case ErrorSchema:
		return "schema"
	case ErrorReference:
		return "reference"
	case ErrorNoHandler:
		return "no-handler"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Structural errors
	ErrMissingMember   = errors.New("missing required member")
	ErrSchemaViolation = errors.New("schema violation")

	// Referential integrity errors
	ErrBrokenReference     = errors.New("reference does not resolve")
	ErrUndeclaredExtension = errors.New("extension not declared in extensionsUsed")
	ErrExtensionCollision  = errors.New("extension name already present as unregistered extension")
	ErrDuplicateIdentifier = errors.New("identifier already present")

	// Dispatch and registration errors
	ErrNoHandler           = errors.New("no handler registered")
	ErrInvalidRegistration = errors.New("invalid handler registration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsMissingMember checks if an error was caused by a required member being absent
func IsMissingMember(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorMissingMember
	}

	return errors.Is(err, ErrMissingMember)
}

// IsSchemaViolation checks if an error was caused by a malformed field shape or type
func IsSchemaViolation(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorSchema
	}

	return errors.Is(err, ErrSchemaViolation)
}

// IsBrokenReference checks if an error is a referential-integrity failure
func IsBrokenReference(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorReference
	}

	return errors.Is(err, ErrBrokenReference) ||
		errors.Is(err, ErrUndeclaredExtension) ||
		errors.Is(err, ErrExtensionCollision) ||
		errors.Is(err, ErrDuplicateIdentifier)
}

// IsNoHandler checks if an error was caused by dispatch finding no codec
func IsNoHandler(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorNoHandler
	}

	return errors.Is(err, ErrNoHandler)
}

// Classify returns the error class for an error.
// Unclassified errors default to ErrorSchema: an error raised while reading
// a document that fits no other class is treated as malformed input.
func Classify(err error) ErrorClass {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}

	switch {
	case IsMissingMember(err):
		return ErrorMissingMember
	case IsBrokenReference(err):
		return ErrorReference
	case IsNoHandler(err):
		return ErrorNoHandler
	default:
		return ErrorSchema
	}
}

// newClassified creates a new classified error
// This is an internal helper - use the Wrap* constructors instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapMissingMember wraps an error as a missing-member failure with context
func WrapMissingMember(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorMissingMember, wrappedErr, component, method, wrappedErr.Error())
}

// WrapSchema wraps an error as a schema violation with context
func WrapSchema(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorSchema, wrappedErr, component, method, wrappedErr.Error())
}

// WrapReference wraps an error as a referential-integrity failure with context
func WrapReference(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorReference, wrappedErr, component, method, wrappedErr.Error())
}

// WrapNoHandler wraps an error as a dispatch failure with context
func WrapNoHandler(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorNoHandler, wrappedErr, component, method, wrappedErr.Error())
}
