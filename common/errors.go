// Package common provides shared constants, types, and utilities
// used across the Greeter application.
package common

import "errors"

// Sentinel errors. These can be checked with errors.Is().
var (
	// Greeting table errors.
	ErrEmptyTable        = errors.New("greeting table is empty")
	ErrDuplicateLanguage = errors.New("duplicate language in greeting table")
	ErrReservedLanguage  = errors.New("language name is reserved")
	ErrEmptyLanguage     = errors.New("language name is empty")

	// Rotation errors.
	ErrInvalidInterval = errors.New("tick interval must be positive")
	ErrInvalidMaxCount = errors.New("max count must be positive")
	ErrNoScheduler     = errors.New("no scheduler provided")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Front end errors.
	ErrUnknownFrontend = errors.New("unknown front end")
	ErrNoDisplay       = errors.New("no graphical display available")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
