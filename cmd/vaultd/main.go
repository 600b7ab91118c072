package main

import (
	"context"
	"fmt"

	"github.com/securedesk/secure-desk/internal/config"
	"github.com/securedesk/secure-desk/internal/crypto"
	handlerHTTP "github.com/securedesk/secure-desk/internal/handler/http"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/server"
	"github.com/securedesk/secure-desk/internal/service"
	"github.com/securedesk/secure-desk/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backend, err := newBackend(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating persistence backend")
	}

	codec, err := crypto.NewFieldCodec(crypto.NewStaticKeyProvider(cfg.App.MasterSecret, []byte(cfg.App.KeySalt)))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field codec")
	}

	services := service.NewServices(backend, codec, cfg, log)
	handler := handlerHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newBackend opens the persistence backend the config selects and, for the
// SQL engines, applies pending schema migrations.
func newBackend(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (store.Backend, error) {
	switch cfg.Storage.DB.Driver {
	case config.DriverPostgres:
		db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			return nil, err
		}
		return store.NewSQLBackend(db, log), nil

	case config.DriverSQLite:
		db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			return nil, err
		}
		return store.NewSQLBackend(db, log), nil

	case config.DriverMemory:
		return store.NewMemoryBackend(cfg.Storage.DB.DSN)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.DB.Driver)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
