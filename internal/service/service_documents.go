package service

import (
	"context"

	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/models"
)

// documentService is the concrete implementation of [DocumentService].
// Document numbers are stored in the clear; masking is a presentation
// concern applied by callers via [models.MaskDocumentNumber].
type documentService struct {
	records *recordStore
}

func NewDocumentService(backend store.Backend, codec crypto.Codec, logger *logger.Logger) DocumentService {
	return &documentService{
		records: newRecordStore(models.DocumentsSchema, backend, codec, logger),
	}
}

func (d *documentService) Create(ctx context.Context, userID string, document models.Document) (models.Document, error) {
	record, err := d.records.create(ctx, userID, document.FieldMap())
	if err != nil {
		return models.Document{}, err
	}

	return models.DocumentFromRecord(record), nil
}

func (d *documentService) GetAll(ctx context.Context, userID string) ([]models.Document, error) {
	records, err := d.records.getAllForUser(ctx, userID)

	documents := make([]models.Document, 0, len(records))
	for _, r := range records {
		documents = append(documents, models.DocumentFromRecord(r))
	}

	return documents, err
}

func (d *documentService) Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.Document, error) {
	record, err := d.records.update(ctx, userID, recordID, fields)
	if err != nil {
		return models.Document{}, err
	}

	return models.DocumentFromRecord(record), nil
}

func (d *documentService) Delete(ctx context.Context, userID, recordID string) error {
	return d.records.delete(ctx, userID, recordID)
}
