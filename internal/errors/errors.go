package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure categories the CLI distinguishes
var (
	// ErrInvalidInput - prompt rejected before any network call
	ErrInvalidInput = errors.New("invalid input")

	// ErrCallFailed - the single completion call failed; covers network,
	// auth, rate-limit and malformed-response failures alike
	ErrCallFailed = errors.New("completion call failed")
)

// WrapWithCategory annotates err and attaches a sentinel category.
func WrapWithCategory(err error, message string, category error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %v: %w", message, err, category)
}

// InvalidInput builds a validation failure from a plain message.
func InvalidInput(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidInput)
}
