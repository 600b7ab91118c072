// Package app contains shared application-layer constants used across the
// secure-desk server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded
	// as JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because an account with the requested email already exists.
	MsgEmailAlreadyExists = "email already exists"

	// MsgAuthenticationFailed is returned when the supplied email/password
	// combination does not match any account. The wording is identical for
	// unknown emails and wrong passwords so accounts cannot be enumerated.
	MsgAuthenticationFailed = "authentication failed"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// (extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user id in request context"
)
