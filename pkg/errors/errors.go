// Package errors provides custom error types for the apiflags system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the apiflags system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverlap indicates that the public and private baselines share entries
	ErrOverlap = errors.New("baseline overlap")

	// ErrUnknownEntry indicates that a source names entries outside the universe
	ErrUnknownEntry = errors.New("unknown entry")

	// ErrUnknownTag indicates that a source names a tag outside the registry
	ErrUnknownTag = errors.New("unknown tag")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// OverlapError reports entries present in both the public and private
// baseline lists. The universe cannot be built until the baselines are
// disjoint.
type OverlapError struct {
	Public  string
	Private string
	Entries []string
}

// Error implements the error interface
func (e *OverlapError) Error() string {
	return fmt.Sprintf("entries in both %s and %s: %s", e.Public, e.Private, strings.Join(e.Entries, ", "))
}

// Is implements errors.Is support
func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}

// NewOverlapError creates a new OverlapError. The offending entries are
// sorted so the message is deterministic regardless of input order.
func NewOverlapError(public, private string, entries []string) *OverlapError {
	return &OverlapError{Public: public, Private: private, Entries: sorted(entries)}
}

// UnknownEntryError reports entries named by a source that do not exist in
// the universe.
type UnknownEntryError struct {
	Source  string
	Entries []string
}

// Error implements the error interface
func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("%s: unknown entries: %s", e.Source, strings.Join(e.Entries, ", "))
}

// Is implements errors.Is support
func (e *UnknownEntryError) Is(target error) bool {
	return target == ErrUnknownEntry
}

// NewUnknownEntryError creates a new UnknownEntryError with the offending
// entries sorted.
func NewUnknownEntryError(source string, entries []string) *UnknownEntryError {
	return &UnknownEntryError{Source: source, Entries: sorted(entries)}
}

// UnknownTagError reports tag values that are not members of the registry.
type UnknownTagError struct {
	Source string
	Tags   []string
}

// Error implements the error interface
func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: unknown tags: %s", e.Source, strings.Join(e.Tags, ", "))
}

// Is implements errors.Is support
func (e *UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}

// NewUnknownTagError creates a new UnknownTagError with the offending tags
// sorted.
func NewUnknownTagError(source string, tags []string) *UnknownTagError {
	return &UnknownTagError{Source: source, Tags: sorted(tags)}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml", "list"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, line int, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Line:    line,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsOverlap checks if an error reports overlapping baselines
func IsOverlap(err error) bool {
	return errors.Is(err, ErrOverlap)
}

// IsUnknownEntry checks if an error reports entries outside the universe
func IsUnknownEntry(err error) bool {
	return errors.Is(err, ErrUnknownEntry)
}

// IsUnknownTag checks if an error reports tags outside the registry
func IsUnknownTag(err error) bool {
	return errors.Is(err, ErrUnknownTag)
}

// IsCanceled checks if an error is a cancellation error, including
// context cancellation and deadline expiry
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, 0, err.Error(), err)
}

func sorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
