package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/mock"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/internal/validators"
	"github.com/securedesk/secure-desk/models"
)

// newTestCredentialSvc wires a credential service to a mocked backend and a
// reversible fake codec that prefixes values instead of encrypting them.
func newTestCredentialSvc(t *testing.T, ctrl *gomock.Controller) (CredentialService, *mock.MockBackend, *mock.MockCodec) {
	t.Helper()
	mockBackend := mock.NewMockBackend(ctrl)
	mockCodec := mock.NewMockCodec(ctrl)

	mockCodec.EXPECT().Encrypt(gomock.Any()).DoAndReturn(func(plaintext string) (string, error) {
		return "enc:" + plaintext, nil
	}).AnyTimes()
	mockCodec.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(ciphertext string) (string, error) {
		return strings.TrimPrefix(ciphertext, "enc:"), nil
	}).AnyTimes()

	svc := NewCredentialService(mockBackend, mockCodec, logger.Nop())
	return svc, mockBackend, mockCodec
}

func TestCredentialService_Create_EncryptsPasswordAndDerivesStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockBackend.EXPECT().Insert(ctx, models.CollectionCredentials, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r models.Record) error {
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, "user-1", r.UserID)
			// plaintext never reaches the backend
			assert.Equal(t, "enc:s3cretpass", r.Field(models.FieldPassword))
			assert.Equal(t, "email", r.Field(models.FieldTitle))
			assert.Equal(t, string(models.StrengthMedium), r.Field(models.FieldStrength))
			assert.False(t, r.CreatedAt.IsZero())
			assert.True(t, r.CreatedAt.Equal(r.UpdatedAt))
			return nil
		})

	created, err := svc.Create(ctx, "user-1", models.Credential{
		Title:    "email",
		Username: "john",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	// the returned view is already decrypted
	assert.Equal(t, "s3cretpass", created.Password)
	assert.Equal(t, models.StrengthMedium, created.Strength)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
}

func TestCredentialService_Create_MissingRequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.Create(context.Background(), "user-1", models.Credential{Title: "only title"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validators.ErrValidation))
	assert.ElementsMatch(t, []string{models.FieldUsername, models.FieldPassword}, validators.MissingFields(err))
}

func TestCredentialService_Create_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.Create(context.Background(), "", models.Credential{
		Title: "t", Username: "u", Password: "p",
	})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestCredentialService_GetAll_SkipsCorruptRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mock.NewMockBackend(ctrl)
	mockCodec := mock.NewMockCodec(ctrl)
	svc := NewCredentialService(mockBackend, mockCodec, logger.Nop())

	ctx := context.Background()
	good := models.Record{ID: "good", UserID: "user-1", Fields: map[string]string{
		models.FieldTitle:    "ok",
		models.FieldUsername: "john",
		models.FieldPassword: "enc:fine",
	}}
	corrupt := models.Record{ID: "corrupt", UserID: "user-1", Fields: map[string]string{
		models.FieldTitle:    "broken",
		models.FieldUsername: "jane",
		models.FieldPassword: "enc:garbled",
	}}

	mockBackend.EXPECT().Find(ctx, models.CollectionCredentials, store.Filter{UserID: "user-1"}).
		Return([]models.Record{good, corrupt}, nil)
	mockCodec.EXPECT().Decrypt("enc:fine").Return("fine", nil)
	mockCodec.EXPECT().Decrypt("enc:garbled").Return("", errors.New("cipher: message authentication failed"))

	credentials, err := svc.GetAll(ctx, "user-1")

	// partial success: the readable record comes back, the corrupt one is
	// reported through the error
	require.Len(t, credentials, 1)
	assert.Equal(t, "fine", credentials[0].Password)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestCredentialService_Update_RecordNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockBackend.EXPECT().Find(ctx, models.CollectionCredentials, store.Filter{ID: "missing"}).
		Return([]models.Record{}, nil)

	_, err := svc.Update(ctx, "user-1", "missing", map[string]string{models.FieldTitle: "new"})
	assert.True(t, errors.Is(err, store.ErrRecordNotFound))
}

func TestCredentialService_Update_ForeignRecordFailsLoudly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	foreign := models.Record{ID: "rec-1", UserID: "someone-else", Fields: map[string]string{}}
	mockBackend.EXPECT().Find(ctx, models.CollectionCredentials, store.Filter{ID: "rec-1"}).
		Return([]models.Record{foreign}, nil)

	_, err := svc.Update(ctx, "user-1", "rec-1", map[string]string{models.FieldTitle: "new"})
	assert.True(t, errors.Is(err, store.ErrNotAuthorized))
}

func TestCredentialService_Update_ReEncryptsOnlySuppliedSensitiveFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	current := models.Record{ID: "rec-1", UserID: "user-1", Fields: map[string]string{
		models.FieldTitle:    "old title",
		models.FieldUsername: "john",
		models.FieldPassword: "enc:oldpass",
	}}
	mockBackend.EXPECT().Find(ctx, models.CollectionCredentials, store.Filter{ID: "rec-1"}).
		Return([]models.Record{current}, nil)
	mockBackend.EXPECT().UpdateByID(ctx, models.CollectionCredentials, "rec-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, fields map[string]string, _ any) error {
			// title replaced, password ciphertext untouched
			assert.Equal(t, "new title", fields[models.FieldTitle])
			assert.Equal(t, "enc:oldpass", fields[models.FieldPassword])
			assert.Equal(t, "john", fields[models.FieldUsername])
			return nil
		})

	updated, err := svc.Update(ctx, "user-1", "rec-1", map[string]string{models.FieldTitle: "new title"})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "oldpass", updated.Password)
}

func TestCredentialService_Update_NewPasswordRefreshesStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	current := models.Record{ID: "rec-1", UserID: "user-1", Fields: map[string]string{
		models.FieldTitle:    "email",
		models.FieldUsername: "john",
		models.FieldPassword: "enc:oldpass",
		models.FieldStrength: string(models.StrengthWeak),
	}}
	mockBackend.EXPECT().Find(ctx, models.CollectionCredentials, store.Filter{ID: "rec-1"}).
		Return([]models.Record{current}, nil)
	mockBackend.EXPECT().UpdateByID(ctx, models.CollectionCredentials, "rec-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, fields map[string]string, _ any) error {
			assert.Equal(t, "enc:averylongpassword", fields[models.FieldPassword])
			assert.Equal(t, string(models.StrengthStrong), fields[models.FieldStrength])
			return nil
		})

	updated, err := svc.Update(ctx, "user-1", "rec-1",
		map[string]string{models.FieldPassword: "averylongpassword"})
	require.NoError(t, err)
	assert.Equal(t, models.StrengthStrong, updated.Strength)
}

func TestCredentialService_Update_ClientSuppliedStrengthIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	current := models.Record{ID: "rec-1", UserID: "user-1", Fields: map[string]string{
		models.FieldTitle:    "email",
		models.FieldUsername: "john",
		models.FieldPassword: "enc:oldpass",
		models.FieldStrength: string(models.StrengthWeak),
	}}
	mockBackend.EXPECT().Find(ctx, models.CollectionCredentials, store.Filter{ID: "rec-1"}).
		Return([]models.Record{current}, nil)
	mockBackend.EXPECT().UpdateByID(ctx, models.CollectionCredentials, "rec-1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, fields map[string]string, _ any) error {
			// the password did not change, so neither may the label
			assert.Equal(t, string(models.StrengthWeak), fields[models.FieldStrength])
			assert.Equal(t, "new title", fields[models.FieldTitle])
			return nil
		})

	updated, err := svc.Update(ctx, "user-1", "rec-1", map[string]string{
		models.FieldTitle:    "new title",
		models.FieldStrength: string(models.StrengthStrong),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StrengthWeak, updated.Strength)
}

func TestCredentialService_Update_StrengthAloneIsNoUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.Update(context.Background(), "user-1", "rec-1",
		map[string]string{models.FieldStrength: string(models.StrengthStrong)})
	assert.True(t, errors.Is(err, ErrNoFieldsToUpdate))
}

func TestCredentialService_Update_EmptyFieldSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.Update(context.Background(), "user-1", "rec-1", map[string]string{})
	assert.True(t, errors.Is(err, ErrNoFieldsToUpdate))
}

func TestCredentialService_Delete_MissingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockBackend.EXPECT().Delete(ctx, models.CollectionCredentials, store.Filter{ID: "missing", UserID: "user-1"}).
		Return(int64(0), nil)

	err := svc.Delete(ctx, "user-1", "missing")
	assert.True(t, errors.Is(err, store.ErrRecordNotFound))
}

func TestCredentialService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBackend, _ := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockBackend.EXPECT().Delete(ctx, models.CollectionCredentials, store.Filter{ID: "rec-1", UserID: "user-1"}).
		Return(int64(1), nil)

	assert.NoError(t, svc.Delete(ctx, "user-1", "rec-1"))
}
