package store

import (
	"context"
	"time"

	"github.com/securedesk/secure-desk/models"
)

//go:generate mockgen -source=backend.go -destination=../mock/backend_mock.go -package=mock

// Backend is the abstract persistence collaborator the record store is
// built against. Implementations exist for PostgreSQL, embedded SQLite and
// an in-process memory store; the record store never depends on which one
// it is given.
//
// All operations are I/O bound and honour ctx cancellation. Implementations
// must be safe for concurrent use: the backend itself is the only shared
// mutable state in the system.
type Backend interface {
	// Insert persists a new record in the named collection.
	Insert(ctx context.Context, collection string, record models.Record) error

	// Find returns all records of the collection matching the filter.
	// Order is unspecified; callers must not rely on insertion order.
	Find(ctx context.Context, collection string, filter Filter) ([]models.Record, error)

	// UpdateByID replaces the field map of the record with the given id
	// and stamps updatedAt. Identity columns (id, user_id, created_at)
	// are never touched. Returns [ErrRecordNotFound] if no record with
	// that id exists in the collection.
	UpdateByID(ctx context.Context, collection, id string, fields map[string]string, updatedAt time.Time) error

	// Delete removes all records matching the filter and reports how many
	// were removed. A zero count is not an error at this layer; callers
	// decide how to surface it.
	Delete(ctx context.Context, collection string, filter Filter) (int64, error)

	// Count returns the number of records matching the filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
}

// Watcher is an optional capability of a [Backend]: native change
// notification. Backends that implement it push a signal whenever the set
// of records matching the filter may have changed; consumers re-query to
// observe the new state. Backends without this capability force consumers
// to poll.
type Watcher interface {
	// Watch registers onChange for the (collection, filter) pair and
	// returns a stop function. The stop function is idempotent and must
	// be called on every exit path to release the listener registration.
	// After stop returns, onChange is never invoked again.
	Watch(ctx context.Context, collection string, filter Filter, onChange func()) (stop func(), err error)
}

// Filter is the predicate vocabulary of [Backend.Find],
// [Backend.Delete] and [Backend.Count]. Zero-value members are ignored, so
// Filter{} matches every record of a collection.
//
// Only unencrypted fields can be used for field equality: ciphertexts are
// produced with a fresh nonce per write and never compare equal.
type Filter struct {
	// ID restricts the match to a single record identifier.
	ID string

	// UserID restricts the match to records owned by one user.
	UserID string

	// Fields adds plaintext field equality constraints
	// (e.g. email lookups in the account directory).
	Fields map[string]string
}

// Matches reports whether the record satisfies every constraint of the
// filter. Used by in-process backends; SQL backends translate the filter
// into WHERE clauses instead.
func (f Filter) Matches(r models.Record) bool {
	if f.ID != "" && r.ID != f.ID {
		return false
	}
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	for name, want := range f.Fields {
		if r.Field(name) != want {
			return false
		}
	}
	return true
}
