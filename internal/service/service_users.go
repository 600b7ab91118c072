package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/securedesk/secure-desk/internal/config"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/internal/utils"
	"github.com/securedesk/secure-desk/models"
)

// userDirectory is the concrete implementation of [UserDirectory]. It
// handles account registration, credential verification, and JWT token
// lifecycle, hashing passwords with HMAC-SHA256 before they reach the
// backend.
type userDirectory struct {
	backend store.Backend
	ids     *utils.UUIDGenerator

	// hashKey is the HMAC secret used when hashing account passwords
	// before storage or comparison. Must match the value used at
	// registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewUserDirectory constructs a [UserDirectory] wired to the given backend
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserDirectory(backend store.Backend, cfg config.App, logger *logger.Logger) UserDirectory {
	return &userDirectory{
		backend:       backend,
		ids:           utils.NewUUIDGenerator(),
		hashKey:       cfg.PasswordHashKey,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new account.
//
// The email is matched case-insensitively against existing accounts; a
// duplicate fails with [store.ErrEmailAlreadyExists] both here and, for
// concurrent registrations, at the backend's unique index.
func (u *userDirectory) Register(ctx context.Context, name, email, password string) (models.UserIdentity, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return models.UserIdentity{}, ErrInvalidDataProvided
	}

	existing, err := u.backend.Find(ctx, models.CollectionUsers, store.Filter{
		Fields: map[string]string{models.FieldEmail: email},
	})
	if err != nil {
		return models.UserIdentity{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if len(existing) > 0 {
		return models.UserIdentity{}, store.ErrEmailAlreadyExists
	}

	now := time.Now().UTC()
	user := models.User{
		ID:             u.ids.Next(),
		Name:           name,
		Email:          email,
		HashedPassword: utils.HashString(password, u.hashKey),
		CreatedAt:      now,
	}

	record := models.Record{
		ID:        user.ID,
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    user.FieldMap(),
	}
	if err = u.backend.Insert(ctx, models.CollectionUsers, record); err != nil {
		log.Err(err).
			Str("func", "userDirectory.Register").
			Str("email", email).
			Msg("account creation ended with error")
		return models.UserIdentity{}, err
	}

	return user.Identity(), nil
}

// Authenticate verifies an email/password pair.
//
// Unknown email and wrong password both fail with the same
// [ErrAuthenticationFailed]; the response never reveals whether the
// account exists.
func (u *userDirectory) Authenticate(ctx context.Context, email, password string) (models.UserIdentity, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.UserIdentity{}, ErrInvalidDataProvided
	}

	found, err := u.backend.Find(ctx, models.CollectionUsers, store.Filter{
		Fields: map[string]string{models.FieldEmail: email},
	})
	if err != nil {
		return models.UserIdentity{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if len(found) == 0 {
		return models.UserIdentity{}, ErrAuthenticationFailed
	}

	user := models.UserFromRecord(found[0])
	if !utils.HashEqual(utils.HashString(password, u.hashKey), user.HashedPassword) {
		log.Error().
			Str("func", "userDirectory.Authenticate").
			Str("id", user.ID).
			Msg("password mismatch")
		return models.UserIdentity{}, ErrAuthenticationFailed
	}

	return user.Identity(), nil
}

// CreateToken issues a signed JWT for the user.
func (u *userDirectory) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(u.tokenIssuer, userID, u.tokenDuration, u.tokenSignKey)
	if err != nil {
		log.Err(err).
			Str("func", "userDirectory.CreateToken").
			Str("id", userID).
			Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a presented token string.
func (u *userDirectory) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, u.tokenSignKey, u.tokenIssuer)
	if err != nil {
		log.Err(err).
			Str("func", "userDirectory.ParseToken").
			Msg("token validation failed")
		return models.Token{}, err
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
