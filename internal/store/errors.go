package store

import "errors"

// Sentinel errors returned by backends and the services built on top of
// them. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when an operation targets a record
	// (by id, or by id and owner) that does not exist in the collection.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrNotAuthorized is returned when an operation targets a record
	// that exists but is owned by a different user. It is always
	// surfaced, never silently ignored.
	ErrNotAuthorized = errors.New("record belongs to another user")

	// ErrEmailAlreadyExists is returned when account creation collides
	// with an existing email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrBackendUnavailable is returned (wrapped) when the underlying
	// transport or storage engine fails. The core never retries
	// internally; callers apply their own retry policy.
	ErrBackendUnavailable = errors.New("persistence backend unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL backend when a statement fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a
	// single result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when an error is detected during
	// multi-row iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")
)
