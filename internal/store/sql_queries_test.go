package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListTransactionsQuery(t *testing.T) {
	query, args, err := buildListTransactionsQuery(7)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM transactions")
	assert.Contains(t, query, "WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC, transaction_id DESC")
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildDeleteTransactionQuery(t *testing.T) {
	query, args, err := buildDeleteTransactionQuery(3, 7)
	require.NoError(t, err)

	// squirrel sorts Eq keys, so the predicate order is deterministic.
	assert.Contains(t, query, "DELETE FROM transactions")
	assert.Contains(t, query, "transaction_id = $1")
	assert.Contains(t, query, "user_id = $2")
	assert.Equal(t, []any{int64(3), int64(7)}, args)
}
