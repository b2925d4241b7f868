package service

import (
	"context"

	"github.com/MKhiriev/go-fin-ledger/models"
)

// AuthService implements the two public identity operations and the token
// lifecycle the auth middleware depends on.
type AuthService interface {
	// Register creates a new account. No token is issued at registration;
	// login is a separate step.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the matching user. Unknown
	// email and wrong password are both reported as ErrInvalidCredentials
	// so the response never reveals whether the account exists.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetSelf resolves the account behind an authenticated identity.
	// Tokens are not revocable, so a deleted account may still present a
	// valid token until expiry; the lookup then fails with
	// store.ErrNoUserWasFound.
	GetSelf(ctx context.Context, userID int64) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TransactionService implements ledger operations. Every method takes the
// authenticated user's ID resolved by the middleware; client-supplied owner
// identifiers are never trusted.
type TransactionService interface {
	AddTransaction(ctx context.Context, userID int64, req models.AddTransactionRequest) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, userID int64) error
}

// AppInfoService exposes build/runtime metadata about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
