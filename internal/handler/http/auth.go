package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/service"
	"github.com/aminurdev/cms-auth/internal/store"
	"github.com/aminurdev/cms-auth/internal/utils"
	"github.com/aminurdev/cms-auth/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.SessionService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email/password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrPermissionResolution):
			log.Err(err).Msg("user permissions could not be resolved")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", response.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.RefreshToken == "" {
		log.Error().Msg("empty refresh token")
		http.Error(w, "refresh token is required", http.StatusBadRequest)
		return
	}

	response, err := h.services.SessionService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenDecode):
			log.Err(err).Msg("refresh token is expired or invalid")
			http.Error(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrTokenSubjectMismatch):
			log.Err(err).Msg("refresh token subject mismatch")
			http.Error(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Msg("user referenced by refresh token not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// me returns the profile of the user identified by the bearer token. The
// auth middleware has already validated the token and stored its subject
// in the request context.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subject, ok := utils.GetSubjectFromContext(ctx)
	if !ok {
		log.Error().Msg("no subject found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.FindUser(ctx, subject)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Msg("user referenced by token not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
