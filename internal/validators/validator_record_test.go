package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securedesk/secure-desk/models"
)

func TestRecordValidator_AllRequiredPresent(t *testing.T) {
	v := NewRecordValidator(models.CredentialsSchema)

	err := v.Validate(context.Background(), map[string]string{
		models.FieldTitle:    "personal email",
		models.FieldUsername: "john",
		models.FieldPassword: "s3cret",
	})
	assert.NoError(t, err)
}

func TestRecordValidator_ListsEveryMissingField(t *testing.T) {
	v := NewRecordValidator(models.CredentialsSchema)

	err := v.Validate(context.Background(), map[string]string{
		models.FieldTitle: "personal email",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.ElementsMatch(t, []string{models.FieldUsername, models.FieldPassword}, MissingFields(err))
}

func TestRecordValidator_EmptyAndWhitespaceCountAsMissing(t *testing.T) {
	v := NewRecordValidator(models.DocumentsSchema)

	err := v.Validate(context.Background(), map[string]string{
		models.FieldDocumentType:   "passport",
		models.FieldName:           "   ",
		models.FieldDocumentNumber: "",
	})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{models.FieldName, models.FieldDocumentNumber}, MissingFields(err))
}

func TestRecordValidator_OptionalFieldsAreIgnored(t *testing.T) {
	v := NewRecordValidator(models.CardsSchema)

	// validFrom/validTo/color are optional and absent
	err := v.Validate(context.Background(), map[string]string{
		models.FieldBankName:       "HDFC",
		models.FieldCardName:       "travel card",
		models.FieldCardHolderName: "John Doe",
		models.FieldCardNumber:     "4111111111111111",
		models.FieldCVV:            "123",
	})
	assert.NoError(t, err)
}

func TestRecordValidator_FieldScoping(t *testing.T) {
	v := NewRecordValidator(models.CredentialsSchema)

	// scoped to username only, a missing password is not checked
	err := v.Validate(context.Background(), map[string]string{
		models.FieldUsername: "john",
	}, models.FieldUsername)
	assert.NoError(t, err)

	err = v.Validate(context.Background(), map[string]string{}, models.FieldUsername)
	require.Error(t, err)
	assert.Equal(t, []string{models.FieldUsername}, MissingFields(err))
}

func TestRecordValidator_AcceptsRecordValues(t *testing.T) {
	v := NewRecordValidator(models.BankDetailsSchema)

	record := models.Record{Fields: map[string]string{
		models.FieldBankName:          "SBI",
		models.FieldAccountHolderName: "John Doe",
		models.FieldAccountNumber:     "123456789012",
		models.FieldIFSCCode:          "SBIN0001234",
	}}

	assert.NoError(t, v.Validate(context.Background(), record))
	assert.NoError(t, v.Validate(context.Background(), &record))
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator(models.CredentialsSchema)

	err := v.Validate(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestMissingFields_NonValidationError(t *testing.T) {
	assert.Nil(t, MissingFields(errors.New("boom")))
}
