package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/internal/service"
	"github.com/MKhiriev/go-fin-ledger/internal/store"
	"github.com/MKhiriev/go-fin-ledger/internal/utils"
	"github.com/MKhiriev/go-fin-ledger/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			message = "all fields are required"
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			message = "email is already taken"
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			message = "registration failed"
		}
		utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusFromError(err))
		return
	}

	// No token at registration; login is a separate step.
	utils.WriteJSON(w, models.MessageResponse{Message: "account created successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			message = "all fields are required"
		case errors.Is(err, service.ErrInvalidCredentials):
			// One message for unknown email and wrong password alike, so
			// responses cannot be used to probe which accounts exist.
			log.Err(err).Msg("invalid credentials")
			message = "wrong email or password"
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			message = "login failed"
		}
		utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "login failed"}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		UserID: foundUser.UserID,
		Token:  token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetSelf(ctx, userID)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			// A token can outlive its account until expiry; report the
			// account as gone rather than the token as bad.
			log.Err(err).Int64("user_id", userID).Msg("account behind a valid token no longer exists")
			message = "account not found"
		default:
			log.Err(err).Msg("unexpected error occurred during account lookup")
			message = "Server Error"
		}
		utils.WriteJSON(w, models.ErrorResponse{Message: message}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
