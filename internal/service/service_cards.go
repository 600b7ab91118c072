package service

import (
	"context"

	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/models"
)

// cardService is the concrete implementation of [CardService]. Card number
// and CVV are encrypted at rest by the underlying record store.
type cardService struct {
	records *recordStore
}

func NewCardService(backend store.Backend, codec crypto.Codec, logger *logger.Logger) CardService {
	return &cardService{
		records: newRecordStore(models.CardsSchema, backend, codec, logger),
	}
}

func (c *cardService) Create(ctx context.Context, userID string, card models.BankCard) (models.BankCard, error) {
	record, err := c.records.create(ctx, userID, card.FieldMap())
	if err != nil {
		return models.BankCard{}, err
	}

	return models.BankCardFromRecord(record), nil
}

func (c *cardService) GetAll(ctx context.Context, userID string) ([]models.BankCard, error) {
	records, err := c.records.getAllForUser(ctx, userID)

	cards := make([]models.BankCard, 0, len(records))
	for _, r := range records {
		cards = append(cards, models.BankCardFromRecord(r))
	}

	return cards, err
}

func (c *cardService) Update(ctx context.Context, userID, recordID string, fields map[string]string) (models.BankCard, error) {
	record, err := c.records.update(ctx, userID, recordID, fields)
	if err != nil {
		return models.BankCard{}, err
	}

	return models.BankCardFromRecord(record), nil
}

func (c *cardService) Delete(ctx context.Context, userID, recordID string) error {
	return c.records.delete(ctx, userID, recordID)
}
