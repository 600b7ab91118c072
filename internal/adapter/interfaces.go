// Package adapter provides a typed HTTP client for the secure-desk REST API.
//
// The primary abstraction is [VaultClient], which decouples callers from the
// wire protocol. The package ships a resty-based implementation
// ([NewHTTPVaultClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/securedesk/secure-desk/models"
)

// VaultClient defines transport-agnostic communication with the secure-desk
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type VaultClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. Register and Login call it
	// automatically on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and stores the returned session token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing account and stores the returned
	// session token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Stats fetches the per-collection item counts of the authenticated
	// user.
	Stats(ctx context.Context) (models.ItemCounts, error)

	// Credentials exposes CRUD calls for the credentials collection.
	Credentials() RecordAPI[models.Credential]

	// Cards exposes CRUD calls for the cards collection.
	Cards() RecordAPI[models.BankCard]

	// BankDetails exposes CRUD calls for the bank details collection.
	BankDetails() RecordAPI[models.BankDetail]

	// Documents exposes CRUD calls for the documents collection.
	Documents() RecordAPI[models.Document]
}

// RecordAPI is the uniform CRUD surface of one item collection.
type RecordAPI[T any] interface {
	Create(ctx context.Context, item T) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, recordID string, fields map[string]string) (T, error)
	Delete(ctx context.Context, recordID string) error
}
