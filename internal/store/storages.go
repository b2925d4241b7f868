package store

import (
	"context"

	"github.com/MKhiriev/go-fin-ledger/internal/config"
	"github.com/MKhiriev/go-fin-ledger/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository        UserRepository
	TransactionRepository TransactionRepository

	// DB is exposed so the entrypoint can run migrations and close the
	// connection on shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL and constructs all repositories over
// the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		DB:                    db,
	}, nil
}
