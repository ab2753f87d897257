package uperrors

import (
	"errors"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInput indicates a request-list ingestion failure.
	ErrInput = errors.New("input error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrExport indicates a result serialization failure.
	ErrExport = errors.New("export error")
)

// InputError represents a failure to load or decode a request list.
type InputError struct {
	// Source is the file path, URL, or source identifier
	Source string
	// Message describes the ingestion failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "input error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// ConfigError represents an invalid configuration or option combination.
type ConfigError struct {
	// Option is the option or field that was invalid
	Option string
	// Message describes the configuration problem
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ExportError represents a failure to serialize an analysis result.
type ExportError struct {
	// Format is the export format that failed ("json", "yaml", or "csv")
	Format string
	// Message describes the serialization failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ExportError) Error() string {
	msg := "export error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ExportError) Is(target error) bool {
	return target == ErrExport
}
