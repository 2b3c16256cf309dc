package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// sessionHeader carries the opaque session identifier: issued in the
// login response, expected on every guarded request afterwards.
const sessionHeader = "session_id"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, user.Username, user.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			utils.WriteMessage(w, "username already exists", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("username", user.Username).Msg("user successfully registered")

	utils.WriteMessage(w, "user registered", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, session, err := h.services.AuthService.Login(ctx, user.Username, user.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrBadLogin):
			log.Err(err).Msg("invalid username/password")
			utils.WriteMessage(w, "invalid username/password", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	// The raw session id travels only in this header, never in a body.
	w.Header().Set(sessionHeader, session.ID)
	_, _ = utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.AuthService.Logout(ctx, r.Header.Get(sessionHeader)); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, "logged out", http.StatusOK)
}
