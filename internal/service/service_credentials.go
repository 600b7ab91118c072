package service

import (
	"context"

	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/models"
)

// credentialService is the concrete implementation of [CredentialService].
type credentialService struct {
	records *recordStore
}

func NewCredentialService(backend store.Backend, codec crypto.Codec, logger *logger.Logger) CredentialService {
	return &credentialService{
		records: newRecordStore(models.CredentialsSchema, backend, codec, logger),
	}
}

func (c *credentialService) Create(ctx context.Context, userID string, credential models.Credential) (models.Credential, error) {
	fields := credential.FieldMap()
	fields[models.FieldStrength] = string(models.PasswordStrength(credential.Password))

	record, err := c.records.create(ctx, userID, fields)
	if err != nil {
		return models.Credential{}, err
	}

	return models.CredentialFromRecord(record), nil
}

func (c *credentialService) GetAll(ctx context.Context, userID string) ([]models.Credential, error) {
	records, err := c.records.getAllForUser(ctx, userID)

	credentials := make([]models.Credential, 0, len(records))
	for _, r := range records {
		credentials = append(credentials, models.CredentialFromRecord(r))
	}

	return credentials, err
}

// Update re-derives the stored strength label whenever the password itself
// changes. The label is never taken from the caller: a client-supplied
// strength field is discarded, so the stored label always reflects the
// stored password.
func (c *credentialService) Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.Credential, error) {
	delete(fields, models.FieldStrength)
	if password, ok := fields[models.FieldPassword]; ok {
		fields[models.FieldStrength] = string(models.PasswordStrength(password))
	}

	record, err := c.records.update(ctx, userID, recordID, fields)
	if err != nil {
		return models.Credential{}, err
	}

	return models.CredentialFromRecord(record), nil
}

func (c *credentialService) Delete(ctx context.Context, userID, recordID string) error {
	return c.records.delete(ctx, userID, recordID)
}
