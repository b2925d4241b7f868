package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/internal/service"
	"github.com/MKhiriev/go-fin-ledger/internal/store"
	"github.com/MKhiriev/go-fin-ledger/internal/utils"
	"github.com/MKhiriev/go-fin-ledger/models"
)

func (h *Handler) addTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.TransactionService.AddTransaction(ctx, userID, req)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid transaction data provided")
			message = "all fields are required"
		default:
			log.Err(err).Msg("unexpected error occurred during transaction creation")
			message = "transaction was not added"
		}
		utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusFromError(err))
		return
	}

	log.Debug().Int64("transaction_id", created.TransactionID).Int64("user_id", userID).Msg("transaction added")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	transactions, err := h.services.TransactionService.ListTransactions(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during transaction listing")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Server Error"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	transactionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid transaction id in URL")
		utils.WriteJSON(w, models.ErrorResponse{Message: "invalid transaction id"}, http.StatusBadRequest)
		return
	}

	err = h.services.TransactionService.DeleteTransaction(ctx, transactionID, userID)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, store.ErrTransactionNotFound):
			// Covers both a missing record and another user's record; the
			// response must not distinguish them.
			log.Err(err).Int64("transaction_id", transactionID).Msg("transaction not found")
			message = "transaction not found"
		default:
			log.Err(err).Msg("unexpected error occurred during transaction deletion")
			message = "transaction was not deleted"
		}
		utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "transaction deleted successfully"}, http.StatusOK)
}
