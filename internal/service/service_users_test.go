package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securedesk/secure-desk/internal/config"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/mock"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/internal/utils"
	"github.com/securedesk/secure-desk/models"
)

var testAppConfig = config.App{
	PasswordHashKey: "test-hash-key",
	TokenSignKey:    "test-sign-key",
	TokenIssuer:     "secure-desk-test",
	TokenDuration:   time.Hour,
}

func newTestUserDirectory(t *testing.T, ctrl *gomock.Controller) (UserDirectory, *mock.MockBackend) {
	t.Helper()
	mockBackend := mock.NewMockBackend(ctrl)
	return NewUserDirectory(mockBackend, testAppConfig, logger.Nop()), mockBackend
}

func emailFilter(email string) store.Filter {
	return store.Filter{Fields: map[string]string{models.FieldEmail: email}}
}

func TestUserDirectory_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, mockBackend := newTestUserDirectory(t, ctrl)
	ctx := context.Background()

	mockBackend.EXPECT().Find(ctx, models.CollectionUsers, emailFilter("john@example.com")).
		Return([]models.Record{}, nil)
	mockBackend.EXPECT().Insert(ctx, models.CollectionUsers, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r models.Record) error {
			stored := r.Field(models.FieldHashedPassword)
			assert.NotEqual(t, "plaintext-password", stored)
			assert.Equal(t, utils.HashString("plaintext-password", testAppConfig.PasswordHashKey), stored)
			assert.Equal(t, "john@example.com", r.Field(models.FieldEmail))
			return nil
		})

	identity, err := dir.Register(ctx, "John", "John@Example.com", "plaintext-password")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.ID)
	assert.Equal(t, "John", identity.Name)
	// email is normalized to lower case
	assert.Equal(t, "john@example.com", identity.Email)
}

func TestUserDirectory_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, mockBackend := newTestUserDirectory(t, ctrl)
	ctx := context.Background()

	existing := models.Record{ID: "u-1", Fields: map[string]string{models.FieldEmail: "john@example.com"}}
	mockBackend.EXPECT().Find(ctx, models.CollectionUsers, emailFilter("john@example.com")).
		Return([]models.Record{existing}, nil)

	_, err := dir.Register(ctx, "John", "john@example.com", "password")
	assert.True(t, errors.Is(err, store.ErrEmailAlreadyExists))
}

func TestUserDirectory_Register_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, _ := newTestUserDirectory(t, ctrl)
	ctx := context.Background()

	cases := []struct{ name, email, password string }{
		{"", "john@example.com", "password"},
		{"John", "", "password"},
		{"John", "john@example.com", ""},
	}
	for _, tc := range cases {
		_, err := dir.Register(ctx, tc.name, tc.email, tc.password)
		assert.True(t, errors.Is(err, ErrInvalidDataProvided))
	}
}

func TestUserDirectory_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, mockBackend := newTestUserDirectory(t, ctrl)
	ctx := context.Background()

	stored := models.Record{ID: "u-1", Fields: map[string]string{
		models.FieldName:           "John",
		models.FieldEmail:          "john@example.com",
		models.FieldHashedPassword: utils.HashString("correct-password", testAppConfig.PasswordHashKey),
	}}
	mockBackend.EXPECT().Find(ctx, models.CollectionUsers, emailFilter("john@example.com")).
		Return([]models.Record{stored}, nil)

	identity, err := dir.Authenticate(ctx, "john@example.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "John", identity.Name)
}

func TestUserDirectory_Authenticate_FailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, mockBackend := newTestUserDirectory(t, ctrl)
	ctx := context.Background()

	// unknown email
	mockBackend.EXPECT().Find(ctx, models.CollectionUsers, emailFilter("nobody@example.com")).
		Return([]models.Record{}, nil)
	_, unknownErr := dir.Authenticate(ctx, "nobody@example.com", "whatever")

	// wrong password
	stored := models.Record{ID: "u-1", Fields: map[string]string{
		models.FieldEmail:          "john@example.com",
		models.FieldHashedPassword: utils.HashString("correct-password", testAppConfig.PasswordHashKey),
	}}
	mockBackend.EXPECT().Find(ctx, models.CollectionUsers, emailFilter("john@example.com")).
		Return([]models.Record{stored}, nil)
	_, wrongErr := dir.Authenticate(ctx, "john@example.com", "wrong-password")

	assert.True(t, errors.Is(unknownErr, ErrAuthenticationFailed))
	assert.True(t, errors.Is(wrongErr, ErrAuthenticationFailed))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserDirectory_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, _ := newTestUserDirectory(t, ctrl)
	ctx := context.Background()

	token, err := dir.CreateToken(ctx, "u-1")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := dir.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestUserDirectory_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, _ := newTestUserDirectory(t, ctrl)

	_, err := dir.ParseToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestUserDirectory_CreateToken_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, _ := newTestUserDirectory(t, ctrl)

	_, err := dir.CreateToken(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}
