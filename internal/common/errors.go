// Package common defines shared sentinel errors used across QuizDesk
// components. Callers should use errors.Is / errors.As to match them.
package common

import (
	"errors"
	"fmt"
)

var (
	// Parent categories.
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	// Signup errors, reported in check order.
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrValidation)
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrWeakPassword  = fmt.Errorf("%w: password must be at least 6 characters long and contain both letters and numbers", ErrValidation)
	ErrIneligibleAge = fmt.Errorf("%w: age not in valid range", ErrValidation)

	// Recovery errors.
	ErrWrongAnswers       = fmt.Errorf("%w: incorrect answers", ErrValidation)
	ErrInvalidNewPassword = fmt.Errorf("%w: invalid new password", ErrValidation)

	// Enrollment errors.
	ErrUnknownCourse = fmt.Errorf("%w: unknown course", ErrValidation)

	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// Authentication failure. Unknown username and wrong password map to the same value.
	ErrInvalidCredentials = errors.New("incorrect credentials")
)

// StorageError reports a failure of the underlying record store.
// It is never produced by validation logic.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorage reports whether err carries a *StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
