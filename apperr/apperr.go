package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the API distinguishes. Anything
// not wrapping one of these is treated as a storage/server failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// NotFoundf wraps ErrNotFound with a caller-facing message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Conflictf wraps ErrConflict with a caller-facing message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}
