package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/internal/utils"
	"github.com/securedesk/secure-desk/internal/validators"
	"github.com/securedesk/secure-desk/models"
)

// recordStore implements the CRUD lifecycle shared by every collection:
// validate, assign an identifier, encrypt sensitive fields, stamp
// timestamps, persist. Reads return fully decrypted views; the plaintext of
// a sensitive field never reaches the backend.
//
// Each typed collection service owns one recordStore bound to its schema.
type recordStore struct {
	schema    models.Schema
	backend   store.Backend
	codec     crypto.Codec
	ids       *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func newRecordStore(schema models.Schema, backend store.Backend, codec crypto.Codec, logger *logger.Logger) *recordStore {
	return &recordStore{
		schema:    schema,
		backend:   backend,
		codec:     codec,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewRecordValidator(schema),
		logger:    logger,
	}
}

// create persists a new record and returns its decrypted view, so the
// caller immediately has usable plaintext without a round-trip.
func (s *recordStore) create(ctx context.Context, userID string, fields map[string]string) (models.Record, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Record{}, ErrInvalidDataProvided
	}

	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.Record{}, err
	}

	now := time.Now().UTC()
	record := models.Record{
		ID:        s.ids.Next(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    make(map[string]string, len(fields)),
	}

	for name, value := range fields {
		stored, err := s.protect(name, value)
		if err != nil {
			log.Err(err).
				Str("func", "recordStore.create").
				Str("collection", s.schema.Collection).
				Str("field", name).
				Msg("failed to encrypt sensitive field")
			return models.Record{}, err
		}
		record.Fields[name] = stored
	}

	if err := s.backend.Insert(ctx, s.schema.Collection, record); err != nil {
		log.Err(err).
			Str("func", "recordStore.create").
			Str("collection", s.schema.Collection).
			Str("id", record.ID).
			Msg("failed to persist record")
		return models.Record{}, err
	}

	plaintext := record.Clone()
	for name, value := range fields {
		plaintext.Fields[name] = value
	}
	return plaintext, nil
}

// getAllForUser returns the decrypted records owned by userID. A record
// whose ciphertext cannot be read under the current key is excluded from
// the result and its error joined into the returned error, so one corrupt
// record never hides the rest of the collection.
func (s *recordStore) getAllForUser(ctx context.Context, userID string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	stored, err := s.backend.Find(ctx, s.schema.Collection, store.Filter{UserID: userID})
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(stored))
	var decryptErrs error
	for _, r := range stored {
		decrypted, decErr := s.reveal(r)
		if decErr != nil {
			log.Err(decErr).
				Str("func", "recordStore.getAllForUser").
				Str("collection", s.schema.Collection).
				Str("id", r.ID).
				Msg("record ciphertext unreadable, excluding from result")
			decryptErrs = errors.Join(decryptErrs, fmt.Errorf("record %s: %w", r.ID, decErr))
			continue
		}
		records = append(records, decrypted)
	}

	return records, decryptErrs
}

// update applies a partial field update to an owned record and returns the
// decrypted view of the result. Identity (id, owner, createdAt) is never
// touched; only supplied sensitive fields are re-encrypted, everything else
// keeps its stored ciphertext.
func (s *recordStore) update(ctx context.Context, userID, id string, fields map[string]string) (models.Record, error) {
	log := logger.FromContext(ctx)

	if userID == "" || id == "" {
		return models.Record{}, ErrInvalidDataProvided
	}
	if len(fields) == 0 {
		return models.Record{}, ErrNoFieldsToUpdate
	}

	scope := make([]string, 0, len(fields))
	for name := range fields {
		scope = append(scope, name)
	}
	if err := s.validator.Validate(ctx, fields, scope...); err != nil {
		return models.Record{}, err
	}

	// look up by id alone so a foreign record fails loudly instead of
	// masquerading as absent
	found, err := s.backend.Find(ctx, s.schema.Collection, store.Filter{ID: id})
	if err != nil {
		return models.Record{}, err
	}
	if len(found) == 0 {
		return models.Record{}, store.ErrRecordNotFound
	}

	current := found[0]
	if current.UserID != userID {
		log.Error().
			Str("func", "recordStore.update").
			Str("collection", s.schema.Collection).
			Str("id", id).
			Msg("update rejected: record belongs to another user")
		return models.Record{}, store.ErrNotAuthorized
	}

	merged := current.Clone()
	for name, value := range fields {
		stored, protErr := s.protect(name, value)
		if protErr != nil {
			return models.Record{}, protErr
		}
		merged.Fields[name] = stored
	}
	merged.UpdatedAt = time.Now().UTC()

	if err = s.backend.UpdateByID(ctx, s.schema.Collection, id, merged.Fields, merged.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "recordStore.update").
			Str("collection", s.schema.Collection).
			Str("id", id).
			Msg("failed to persist record update")
		return models.Record{}, err
	}

	return s.reveal(merged)
}

// delete removes an owned record. The filter is (id, owner)-scoped, so a
// record owned by someone else is indistinguishable from an absent one and
// both fail with [store.ErrRecordNotFound].
func (s *recordStore) delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrInvalidDataProvided
	}

	deleted, err := s.backend.Delete(ctx, s.schema.Collection, store.Filter{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return store.ErrRecordNotFound
	}

	return nil
}

// protect encrypts the value when the schema marks the field sensitive.
// Empty values pass through so absent optional fields round-trip as absent.
func (s *recordStore) protect(name, value string) (string, error) {
	if value == "" || !s.schema.IsSensitive(name) {
		return value, nil
	}
	return s.codec.Encrypt(value)
}

// reveal returns a copy of the record with every sensitive field decrypted.
func (s *recordStore) reveal(r models.Record) (models.Record, error) {
	out := r.Clone()
	for _, name := range s.schema.Sensitive {
		stored := out.Fields[name]
		if stored == "" {
			continue
		}
		plaintext, err := s.codec.Decrypt(stored)
		if err != nil {
			return models.Record{}, err
		}
		out.Fields[name] = plaintext
	}
	return out, nil
}
