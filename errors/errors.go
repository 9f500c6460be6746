// Package errors provides standardized error handling patterns for ista
// components. It includes error classification, standard error variables,
// and helper functions for consistent error wrapping and classification
// across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorStructural represents malformed construction of ontology values,
	// such as an axiom referencing an invalid IRI. Structural errors are
	// programmer errors and are never silently tolerated.
	ErrorStructural ErrorClass = iota
	// ErrorNotFound represents a query target absent from the ontology.
	// Absence is an expected steady-state outcome of exploratory graph
	// queries and is surfaced as an empty result rather than a failure.
	ErrorNotFound
	// ErrorUnsupported represents an operation invoked for an unimplemented
	// syntax or capability. Unsupported operations fail immediately and
	// never return partial output.
	ErrorUnsupported
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorStructural:
		return "structural"
	case ErrorNotFound:
		return "not_found"
	case ErrorUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Structural errors
	ErrInvalidIRI        = errors.New("invalid IRI")
	ErrInvalidLiteral    = errors.New("invalid literal")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrInvalidAxiom      = errors.New("invalid axiom")
	ErrInvalidExpression = errors.New("invalid class expression")

	// Lookup errors
	ErrEntityNotFound     = errors.New("entity not found")
	ErrIndividualNotFound = errors.New("individual not found")
	ErrOntologyNotFound   = errors.New("ontology not found")

	// Serialization and collaborator errors
	ErrUnsupportedSyntax = errors.New("unsupported ontology syntax")
	ErrParsingFailed     = errors.New("parsing failed")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
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

// IsStructural checks if an error stems from malformed ontology construction
func IsStructural(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorStructural
	}

	return errors.Is(err, ErrInvalidIRI) ||
		errors.Is(err, ErrInvalidLiteral) ||
		errors.Is(err, ErrInvalidEntity) ||
		errors.Is(err, ErrInvalidAxiom) ||
		errors.Is(err, ErrInvalidExpression) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrParsingFailed)
}

// IsNotFound checks if an error represents an absent query target
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorNotFound
	}

	return errors.Is(err, ErrEntityNotFound) ||
		errors.Is(err, ErrIndividualNotFound) ||
		errors.Is(err, ErrOntologyNotFound)
}

// IsUnsupported checks if an error represents an unimplemented operation
func IsUnsupported(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorUnsupported
	}

	return errors.Is(err, ErrUnsupportedSyntax)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsNotFound(err) {
		return ErrorNotFound
	}
	if IsUnsupported(err) {
		return ErrorUnsupported
	}

	// Unknown failures indicate a construction or programming mistake to
	// fix upstream, never something to retry.
	return ErrorStructural
}

// newClassified creates a new classified error
// This is an internal helper - use WrapStructural(), WrapNotFound(), or WrapUnsupported() instead.
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

// WrapStructural wraps an error as structural with context
func WrapStructural(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorStructural, err, component, method,
		fmt.Sprintf("%s.%s: %s failed: %v", component, method, action, err))
}

// WrapNotFound wraps an error as a not-found outcome with context
func WrapNotFound(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorNotFound, err, component, method,
		fmt.Sprintf("%s.%s: %s failed: %v", component, method, action, err))
}

// WrapUnsupported wraps an error as an unsupported operation with context
func WrapUnsupported(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return newClassified(ErrorUnsupported, err, component, method,
		fmt.Sprintf("%s.%s: %s failed: %v", component, method, action, err))
}
