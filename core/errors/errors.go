// Package errors provides the error types and diagnostic taxonomy shared by the
// reference parser, the versification schemes and the book order schemes.
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Sentinel errors for lookups against the configuration schemes.
var (
	// ErrUnknownBook indicates a book code absent from a scheme
	ErrUnknownBook = crdb.New("unknown book")
	// ErrUnknownChapter indicates a chapter absent from a book's versification
	ErrUnknownChapter = crdb.New("unknown chapter")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = crdb.New("invalid input")
)

// NotFoundError represents a failed scheme lookup with context
type NotFoundError struct {
	Scheme string // Name of the scheme that was consulted
	Key    string // What was looked up (e.g. "MAT" or "MAT 29")
	Err    error  // ErrUnknownBook or ErrUnknownChapter
}

func (e *NotFoundError) Error() string {
	if e.Scheme != "" {
		return fmt.Sprintf("%s in %s: %s", e.Err, e.Scheme, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to decode an interchange string or
// configuration document.
type ParseError struct {
	Format  string // Format being parsed (e.g., "OSIS", "profile")
	Input   string // Offending input, if short enough to be useful
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("failed to parse %s %q: %s", e.Format, e.Input, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// NewUnknownBook creates a NotFoundError for a book lookup
func NewUnknownBook(scheme, book string) *NotFoundError {
	return &NotFoundError{Scheme: scheme, Key: book, Err: ErrUnknownBook}
}

// NewUnknownChapter creates a NotFoundError for a chapter lookup
func NewUnknownChapter(scheme, book string, chapter int) *NotFoundError {
	return &NotFoundError{
		Scheme: scheme,
		Key:    fmt.Sprintf("%s %d", book, chapter),
		Err:    ErrUnknownChapter,
	}
}

// NewParse creates a ParseError
func NewParse(format, input, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Input:   input,
		Message: message,
	}
}

// Assertf builds an assertion-failure error for a programming-contract
// violation. Callers panic with the result; it is never returned for
// conditions that external input can trigger.
func Assertf(format string, args ...interface{}) error {
	return crdb.AssertionFailedf(format, args...)
}

// IsAssertion reports whether err is an assertion failure built by Assertf.
func IsAssertion(err error) bool {
	return crdb.IsAssertionFailure(err)
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	return crdb.Wrap(err, message)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	return crdb.Wrapf(err, format, args...)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return crdb.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return crdb.As(err, target)
}
