package service

import (
	"github.com/securedesk/secure-desk/internal/config"
	"github.com/securedesk/secure-desk/internal/crypto"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
)

// Services bundles every application service behind one constructor for
// dependency injection at startup.
type Services struct {
	Credentials CredentialService
	Cards       CardService
	BankDetails BankDetailService
	Documents   DocumentService
	Users       UserDirectory
	Aggregator  AggregatorService
}

func NewServices(backend store.Backend, codec crypto.Codec, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Credentials: NewCredentialService(backend, codec, logger),
		Cards:       NewCardService(backend, codec, logger),
		BankDetails: NewBankDetailService(backend, codec, logger),
		Documents:   NewDocumentService(backend, codec, logger),
		Users:       NewUserDirectory(backend, cfg.App, logger),
		Aggregator:  NewAggregator(backend, cfg.Aggregator, logger),
	}
}
