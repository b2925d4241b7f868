package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/models"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. It executes all ledger CRUD operations against
// the "transactions" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, transaction_id, row counts).
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTransaction persists a new ledger record and returns it with
// server-assigned fields (TransactionID, CreatedAt) populated from the
// RETURNING clause.
func (t *transactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	row := t.DB.QueryRowContext(ctx, createTransaction,
		transaction.UserID,
		transaction.Title,
		transaction.Type,
		transaction.Date,
		transaction.Amount,
	)

	var created models.Transaction
	if err := row.Scan(
		&created.TransactionID,
		&created.UserID,
		&created.Title,
		&created.Type,
		&created.Date,
		&created.Amount,
		&created.CreatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.CreateTransaction").
			Int64("user_id", transaction.UserID).
			Bool("retryable", t.DB.errorClassificator.Classify(err) == Retryable).
			Msg("error: transaction insert failed")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListTransactionsByUser retrieves every ledger record owned by userID,
// ordered by creation time descending with transaction_id as tie-break.
//
// An owner with no records yields an empty (non-nil) slice, not an error.
func (t *transactionRepository) ListTransactionsByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListTransactionsByUser").
			Int64("user_id", userID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListTransactionsByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, 50)

	for rows.Next() {
		var item models.Transaction

		scanErr := rows.Scan(
			&item.TransactionID,
			&item.UserID,
			&item.Title,
			&item.Type,
			&item.Date,
			&item.Amount,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*transactionRepository.ListTransactionsByUser").
				Int64("user_id", userID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListTransactionsByUser").
			Int64("user_id", userID).
			Msg("row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// DeleteTransaction removes the record with the given identifier, scoped to
// the owning user. A transactionID that does not exist, or belongs to a
// different user, deletes zero rows and returns [ErrTransactionNotFound].
func (t *transactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTransactionQuery(transactionID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.DeleteTransaction").
			Int64("transaction_id", transactionID).
			Int64("user_id", userID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := t.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.DeleteTransaction").
			Int64("transaction_id", transactionID).
			Int64("user_id", userID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
