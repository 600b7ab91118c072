package service

import (
	"context"

	"github.com/securedesk/secure-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService manages login/password entries. Create derives and
// stores the password strength label alongside the entry; Update re-derives
// it whenever a new password is supplied.
type CredentialService interface {
	Create(ctx context.Context, userID string, credential models.Credential) (models.Credential, error)
	GetAll(ctx context.Context, userID string) ([]models.Credential, error)
	Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.Credential, error)
	Delete(ctx context.Context, userID, recordID string) error
}

// CardService manages payment card entries.
type CardService interface {
	Create(ctx context.Context, userID string, card models.BankCard) (models.BankCard, error)
	GetAll(ctx context.Context, userID string) ([]models.BankCard, error)
	Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.BankCard, error)
	Delete(ctx context.Context, userID, recordID string) error
}

// BankDetailService manages bank account entries.
type BankDetailService interface {
	Create(ctx context.Context, userID string, detail models.BankDetail) (models.BankDetail, error)
	GetAll(ctx context.Context, userID string) ([]models.BankDetail, error)
	Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.BankDetail, error)
	Delete(ctx context.Context, userID, recordID string) error
}

// DocumentService manages identity document entries.
type DocumentService interface {
	Create(ctx context.Context, userID string, document models.Document) (models.Document, error)
	GetAll(ctx context.Context, userID string) ([]models.Document, error)
	Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.Document, error)
	Delete(ctx context.Context, userID, recordID string) error
}

// UserDirectory manages vault accounts and their sessions.
type UserDirectory interface {
	// Register creates a new account. The plaintext password is hashed
	// before it reaches the backend; a duplicate email fails with
	// [store.ErrEmailAlreadyExists].
	Register(ctx context.Context, name, email, password string) (models.UserIdentity, error)

	// Authenticate verifies an email/password pair. Both an unknown
	// email and a wrong password fail with the same
	// [ErrAuthenticationFailed], so accounts cannot be enumerated.
	Authenticate(ctx context.Context, email, password string) (models.UserIdentity, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, userID string) (models.Token, error)

	// ParseToken validates a presented token string and returns its
	// parsed form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AggregatorService reports per-collection item counts for one user's
// dashboard.
type AggregatorService interface {
	// SnapshotCounts returns the current counts in one shot.
	SnapshotCounts(ctx context.Context, userID string) (models.ItemCounts, error)

	// ObserveCounts delivers counts to onChange: once immediately, then
	// again whenever any collection's count changes. The returned stop
	// function is idempotent and must be called on every exit path.
	ObserveCounts(ctx context.Context, userID string, onChange func(models.ItemCounts)) (stop func(), err error)
}
