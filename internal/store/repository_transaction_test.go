package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/models"
)

func newTestTransactionRepo(t *testing.T) (*transactionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &transactionRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func transactionColumns() []string {
	return []string{"transaction_id", "user_id", "title", "type", "date", "amount", "created_at"}
}

func TestCreateTransaction_Success(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	tx := models.Transaction{
		UserID: 7,
		Title:  "Groceries",
		Type:   models.TransactionTypeExpense,
		Date:   date,
		Amount: 42.50,
	}

	rows := sqlmock.
		NewRows(transactionColumns()).
		AddRow(1, tx.UserID, tx.Title, string(tx.Type), tx.Date, tx.Amount, now)

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(tx.UserID, tx.Title, tx.Type, tx.Date, tx.Amount).
		WillReturnRows(rows)

	created, err := repo.CreateTransaction(ctx, tx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TransactionID != 1 {
		t.Errorf("expected TransactionID=1, got %d", created.TransactionID)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned CreatedAt to be populated")
	}
}

func TestCreateTransaction_DBError(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateTransaction(ctx, models.Transaction{UserID: 7})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestListTransactionsByUser_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)

	// Rows arrive from the database already sorted newest-first.
	rows := sqlmock.
		NewRows(transactionColumns()).
		AddRow(3, 7, "Salary", "income", t3, 1000.0, t3).
		AddRow(2, 7, "Rent", "expense", t2, 500.0, t2).
		AddRow(1, 7, "Coffee", "expense", t1, 3.0, t1)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	list, err := repo.ListTransactionsByUser(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(list))
	}
	for i, wantID := range []int64{3, 2, 1} {
		if list[i].TransactionID != wantID {
			t.Errorf("position %d: expected TransactionID=%d, got %d", i, wantID, list[i].TransactionID)
		}
	}
	for _, item := range list {
		if item.UserID != 7 {
			t.Errorf("expected every record to belong to user 7, got %d", item.UserID)
		}
	}
}

func TestListTransactionsByUser_Empty(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(transactionColumns()))

	list, err := repo.ListTransactionsByUser(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(list) != 0 {
		t.Fatalf("expected no transactions, got %d", len(list))
	}
}

func TestListTransactionsByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListTransactionsByUser(ctx, 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteTransaction_Success(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTransaction(ctx, 3, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(404), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTransaction(ctx, 404, 7)
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestDeleteTransaction_OtherOwner(t *testing.T) {
	repo, mock, db := newTestTransactionRepo(t)
	defer db.Close()

	ctx := context.Background()

	// The record exists but belongs to user 8: the owner-scoped predicate
	// matches nothing, so the delete is reported as not-found.
	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTransaction(ctx, 3, 7)
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
