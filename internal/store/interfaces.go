package store

import (
	"context"

	"github.com/MKhiriev/go-fin-ledger/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Lookups return discriminated outcomes: an absent record surfaces as
// [ErrNoUserWasFound], never as a zero-value user or a generic error, so
// callers can always tell "not found" apart from "query failed".
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TransactionRepository is the persistence contract for ledger records.
// Every operation is parameterized by the owning user's identifier.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, userID int64) error
}
