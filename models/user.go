package models

import "time"

// User is the persisted account record. The password is never stored in any
// reversible form: HashedPassword is a keyed one-way hash computed by the
// user directory before the record reaches the backend.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Identity strips the user down to the fields safe to hand back to callers
// after registration or authentication.
func (u User) Identity() UserIdentity {
	return UserIdentity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserIdentity is the public identity of an authenticated user.
type UserIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FieldMap flattens the user into the backend field shape.
func (u User) FieldMap() map[string]string {
	return map[string]string{
		FieldName:           u.Name,
		FieldEmail:          u.Email,
		FieldHashedPassword: u.HashedPassword,
	}
}

// UserFromRecord builds the typed view from a record.
func UserFromRecord(r Record) User {
	return User{
		ID:             r.ID,
		Name:           r.Field(FieldName),
		Email:          r.Field(FieldEmail),
		HashedPassword: r.Field(FieldHashedPassword),
		CreatedAt:      r.CreatedAt,
	}
}
