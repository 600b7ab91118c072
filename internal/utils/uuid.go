package utils

import "github.com/google/uuid"

// UUIDGenerator produces globally unique opaque record identifiers. No two
// calls collide with overwhelming probability; no ordering is guaranteed to
// callers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Next returns a fresh identifier. UUIDv7 is preferred; if the monotonic
// source fails, a random UUIDv4 is used instead.
func (g *UUIDGenerator) Next() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
