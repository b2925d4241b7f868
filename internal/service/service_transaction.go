package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/internal/store"
	"github.com/MKhiriev/go-fin-ledger/models"
)

// transactionService is the concrete implementation of TransactionService.
// It validates inputs and delegates persistence to a TransactionRepository;
// the owner of every operation is the authenticated user ID the handlers
// resolve from context.
type transactionService struct {
	transactionRepository store.TransactionRepository

	logger *logger.Logger
}

// NewTransactionService constructs a TransactionService wired to the given
// repository.
func NewTransactionService(transactionRepository store.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// AddTransaction validates the request and persists a new ledger record
// owned by userID.
//
// Validation requires a non-empty title, a type from the {income, expense}
// enum, a non-zero date, and a non-zero amount. Nothing is persisted when
// validation fails. The amount's sign is not constrained.
func (t *transactionService) AddTransaction(ctx context.Context, userID int64, req models.AddTransactionRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := validateAddTransaction(req); err != nil {
		log.Error().
			Int64("user_id", userID).
			Str("title", req.Title).
			Str("type", string(req.Type)).
			Msg("invalid transaction data provided")
		return models.Transaction{}, err
	}

	created, err := t.transactionRepository.CreateTransaction(ctx, models.Transaction{
		UserID: userID,
		Title:  req.Title,
		Type:   req.Type,
		Date:   req.Date,
		Amount: req.Amount,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("transaction creation ended with error")
		return models.Transaction{}, fmt.Errorf("transaction creation ended with error: %w", err)
	}

	return created, nil
}

// ListTransactions returns every record owned by userID, newest first.
// The repository guarantees the ordering and the owner scoping.
func (t *transactionService) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	transactions, err := t.transactionRepository.ListTransactionsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("transaction listing ended with error")
		return nil, fmt.Errorf("transaction listing ended with error: %w", err)
	}

	return transactions, nil
}

// DeleteTransaction removes a single record, scoped to the owner. An absent
// or foreign transactionID surfaces as store.ErrTransactionNotFound.
func (t *transactionService) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := t.transactionRepository.DeleteTransaction(ctx, transactionID, userID); err != nil {
		log.Err(err).
			Int64("transaction_id", transactionID).
			Int64("user_id", userID).
			Msg("transaction deletion ended with error")
		return err
	}

	return nil
}

// validateAddTransaction enforces the input schema of the add operation.
func validateAddTransaction(req models.AddTransactionRequest) error {
	if req.Title == "" {
		return ErrInvalidDataProvided
	}
	if !req.Type.Valid() {
		return ErrInvalidDataProvided
	}
	if req.Date.IsZero() {
		return ErrInvalidDataProvided
	}
	if req.Amount == 0 {
		return ErrInvalidDataProvided
	}

	return nil
}
