package model

import (
	"errors"
	"fmt"
)

// DataError is an error caused by missing or malformed input data:
// an unreadable wallets list, invalid JSON, or an entry that lacks a
// required field.
type DataError struct {
	Message string
	Err     error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *DataError) Unwrap() error { return e.Err }

// NewDataError builds a DataError with an optional underlying cause.
func NewDataError(message string, cause error) *DataError {
	return &DataError{Message: message, Err: cause}
}

// IsDataError checks if error is (or wraps) a DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// ConfigError is an error caused by invalid invocation configuration:
// a missing required parameter, an unreadable template, a template
// placeholder with no value, or an unwritable output path.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError builds a ConfigError with an optional underlying cause.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{Message: message, Err: cause}
}

// IsConfigError checks if error is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
