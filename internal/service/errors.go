package service

import (
	"errors"
	"fmt"
)

var (
	ErrSelfRental          = errors.New("cannot rent your own equipment")
	ErrMissingLocation     = errors.New("delivery location is required")
	ErrInvalidDateRange    = errors.New("invalid rental date range")
	ErrProfileProvisioning = errors.New("failed to provision profile")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// PersistenceError wraps a store failure. Validation errors are surfaced
// as-is, store failures all funnel through this wrapper so callers can show
// a generic message while the original error stays reachable via Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
