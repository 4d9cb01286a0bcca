// Package common defines sentinel errors shared by the store, services and the
// interactive client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Write failure reasons. A failed insert is wrapped with exactly one of
	// these so the caller can tell why it was rejected.
	ErrDuplicate         = errors.New("duplicate key")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrConstraint        = errors.New("constraint violation")
	ErrUnavailable       = errors.New("store unavailable")
	ErrUnclassifiedWrite = errors.New("write failed")

	// Input errors raised by the interactive client before anything is stored.
	ErrInvalidNumber = errors.New("invalid number")
)

// Reason returns the failure reason sentinel carried by err, or nil when err
// carries none of the write reasons.
func Reason(err error) error {
	for _, r := range []error{ErrDuplicate, ErrInvalidReference, ErrConstraint, ErrUnavailable, ErrUnclassifiedWrite} {
		if errors.Is(err, r) {
			return r
		}
	}
	return nil
}
