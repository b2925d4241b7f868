package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-fin-ledger/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createTransaction = `INSERT INTO transactions (user_id, title, type, date, amount)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING transaction_id, user_id, title, type, date, amount, created_at;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListTransactionsQuery builds the owner-scoped listing query.
//
// Ordering is created_at descending with transaction_id descending as the
// tie-break, so records sharing a timestamp come back in reverse insertion
// order and the listing stays deterministic.
func buildListTransactionsQuery(userID int64) (string, []any, error) {
	return psql.
		Select("transaction_id", "user_id", "title", "type", "date", "amount", "created_at").
		From(models.Transaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "transaction_id DESC").
		ToSql()
}

// buildDeleteTransactionQuery builds the owner-scoped delete.
//
// The user_id predicate means a caller can only ever remove their own
// records; a foreign ID deletes zero rows and surfaces as not-found.
func buildDeleteTransactionQuery(transactionID, userID int64) (string, []any, error) {
	return psql.
		Delete(models.Transaction{}.TableName()).
		Where(sq.Eq{"transaction_id": transactionID, "user_id": userID}).
		ToSql()
}
