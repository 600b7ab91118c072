package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is structurally
	// unusable before any business rule applies (e.g. empty user id).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is returned for both unknown-email and
	// wrong-password login attempts. The two cases are deliberately
	// indistinguishable.
	ErrAuthenticationFailed = errors.New("invalid email or password")

	// ErrNoFieldsToUpdate is returned when an update request carries an
	// empty field set.
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
