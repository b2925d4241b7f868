package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/internal/mock"
	"github.com/MKhiriev/go-fin-ledger/internal/store"
	"github.com/MKhiriev/go-fin-ledger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTransactionService(ctrl *gomock.Controller) (TransactionService, *mock.MockTransactionRepository) {
	mockTransactions := mock.NewMockTransactionRepository(ctrl)
	return NewTransactionService(mockTransactions, logger.Nop()), mockTransactions
}

func validAddRequest() models.AddTransactionRequest {
	return models.AddTransactionRequest{
		Title:  "Groceries",
		Type:   models.TransactionTypeExpense,
		Date:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Amount: 42.50,
	}
}

func TestTransactionService_Add_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTransactions := newTestTransactionService(ctrl)
	ctx := context.Background()
	req := validAddRequest()

	mockTransactions.EXPECT().
		CreateTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			assert.Equal(t, int64(7), tx.UserID, "owner must be the authenticated identity")
			assert.Equal(t, req.Title, tx.Title)
			assert.Equal(t, req.Type, tx.Type)

			tx.TransactionID = 1
			tx.CreatedAt = time.Now()
			return tx, nil
		})

	created, err := svc.AddTransaction(ctx, 7, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.TransactionID)
	assert.Equal(t, int64(7), created.UserID)
}

func TestTransactionService_Add_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No EXPECT calls: invalid requests must never reach the repository.
	svc, _ := newTestTransactionService(ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.AddTransactionRequest)
	}{
		{name: "empty title", mutate: func(r *models.AddTransactionRequest) { r.Title = "" }},
		{name: "unknown type", mutate: func(r *models.AddTransactionRequest) { r.Type = "transfer" }},
		{name: "empty type", mutate: func(r *models.AddTransactionRequest) { r.Type = "" }},
		{name: "zero date", mutate: func(r *models.AddTransactionRequest) { r.Date = time.Time{} }},
		{name: "zero amount", mutate: func(r *models.AddTransactionRequest) { r.Amount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAddRequest()
			tt.mutate(&req)

			_, err := svc.AddTransaction(ctx, 7, req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestTransactionService_Add_NegativeAmountAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTransactions := newTestTransactionService(ctrl)
	ctx := context.Background()

	req := validAddRequest()
	req.Amount = -15.0

	mockTransactions.EXPECT().
		CreateTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tx models.Transaction) (models.Transaction, error) {
			tx.TransactionID = 2
			return tx, nil
		})

	created, err := svc.AddTransaction(ctx, 7, req)
	require.NoError(t, err)
	assert.Equal(t, -15.0, created.Amount)
}

func TestTransactionService_List_PassesOwnerThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTransactions := newTestTransactionService(ctrl)
	ctx := context.Background()

	expected := []models.Transaction{
		{TransactionID: 3, UserID: 7},
		{TransactionID: 2, UserID: 7},
	}

	mockTransactions.EXPECT().
		ListTransactionsByUser(ctx, int64(7)).
		Return(expected, nil)

	list, err := svc.ListTransactions(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, expected, list)
}

func TestTransactionService_List_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTransactions := newTestTransactionService(ctrl)
	ctx := context.Background()

	mockTransactions.EXPECT().
		ListTransactionsByUser(ctx, int64(7)).
		Return(nil, errors.New("db network error"))

	_, err := svc.ListTransactions(ctx, 7)
	assert.Error(t, err)
}

func TestTransactionService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTransactions := newTestTransactionService(ctrl)
	ctx := context.Background()

	mockTransactions.EXPECT().
		DeleteTransaction(ctx, int64(404), int64(7)).
		Return(store.ErrTransactionNotFound)

	err := svc.DeleteTransaction(ctx, 404, 7)
	assert.ErrorIs(t, err, store.ErrTransactionNotFound)
}

func TestTransactionService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTransactions := newTestTransactionService(ctrl)
	ctx := context.Background()

	mockTransactions.EXPECT().
		DeleteTransaction(ctx, int64(3), int64(7)).
		Return(nil)

	assert.NoError(t, svc.DeleteTransaction(ctx, 3, 7))
}
