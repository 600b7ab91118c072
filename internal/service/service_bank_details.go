package service

import (
	"context"

	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/models"
)

// bankDetailService is the concrete implementation of [BankDetailService].
type bankDetailService struct {
	records *recordStore
}

func NewBankDetailService(backend store.Backend, codec crypto.Codec, logger *logger.Logger) BankDetailService {
	return &bankDetailService{
		records: newRecordStore(models.BankDetailsSchema, backend, codec, logger),
	}
}

func (b *bankDetailService) Create(ctx context.Context, userID string, detail models.BankDetail) (models.BankDetail, error) {
	record, err := b.records.create(ctx, userID, detail.FieldMap())
	if err != nil {
		return models.BankDetail{}, err
	}

	return models.BankDetailFromRecord(record), nil
}

func (b *bankDetailService) GetAll(ctx context.Context, userID string) ([]models.BankDetail, error) {
	records, err := b.records.getAllForUser(ctx, userID)

	details := make([]models.BankDetail, 0, len(records))
	for _, r := range records {
		details = append(details, models.BankDetailFromRecord(r))
	}

	return details, err
}

func (b *bankDetailService) Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.BankDetail, error) {
	record, err := b.records.update(ctx, userID, recordID, fields)
	if err != nil {
		return models.BankDetail{}, err
	}

	return models.BankDetailFromRecord(record), nil
}

func (b *bankDetailService) Delete(ctx context.Context, userID, recordID string) error {
	return b.records.delete(ctx, userID, recordID)
}
