package models

import "time"

// Record is the backend-agnostic persistence shape of a single vault item:
// a flat map of field name to value plus the universal identity and
// timestamp columns. For fields listed as sensitive in the owning
// collection's [Schema] the value is a codec-produced ciphertext string;
// everything else is stored as plaintext.
type Record struct {
	// ID is the opaque unique identifier assigned at creation.
	// Immutable, never reused.
	ID string `json:"id"`

	// UserID is the identifier of the owning user. Every record belongs
	// to exactly one user and is invisible to all others.
	UserID string `json:"userId"`

	// CreatedAt is set once when the record is first persisted.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`

	// Fields holds the collection-specific attributes.
	Fields map[string]string `json:"fields"`
}

// Field returns the value stored under name, or the empty string when the
// field is absent. Absent and empty fields are deliberately
// indistinguishable: optional fields round-trip as absent.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// SetField stores value under name, allocating the field map on first use.
func (r *Record) SetField(name, value string) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[name] = value
}

// Clone returns a deep copy of the record. Backends that hand records out
// of shared in-memory state must clone so callers can never mutate stored
// data behind the backend's back.
func (r Record) Clone() Record {
	out := r
	if r.Fields != nil {
		out.Fields = make(map[string]string, len(r.Fields))
		for k, v := range r.Fields {
			out.Fields[k] = v
		}
	}
	return out
}
