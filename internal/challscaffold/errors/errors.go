// Package errors holds the sentinel errors shared by the scaffolding pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrMissingRequired = errors.New("missing required field")

	// Page errors
	ErrEmptyURL         = errors.New("URL cannot be empty")
	ErrFetchFailed      = errors.New("page fetch failed")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrParseFailed      = errors.New("markup parse failed")

	// Scaffolding errors
	ErrSpawn       = errors.New("could not start scaffolding command")
	ErrMarkerWrite = errors.New("could not write template marker")
	ErrEmptyFolder = errors.New("label produces an empty folder name")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join combines errors; nil entries are dropped
func Join(errs ...error) error {
	return errors.Join(errs...)
}
