package service

import (
	"github.com/MKhiriev/go-fin-ledger/internal/config"
	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/internal/store"
)

// Services bundles every domain service the transport layer depends on.
type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

// NewServices wires all services over the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
