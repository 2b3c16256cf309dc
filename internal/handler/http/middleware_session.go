package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
)

// session is an HTTP middleware that enforces session-based
// authentication.
//
// It reads the session identifier from the request header, resolves it
// to a user id via [service.AuthService.ValidateSession], and on
// success stores the id in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests with a missing, unknown or expired session are rejected
// with HTTP 401 Unauthorized.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sessionID := r.Header.Get(sessionHeader)
		if sessionID == "" {
			log.Warn().Msg("request without a session id")
			utils.WriteMessage(w, "no session", http.StatusUnauthorized)
			return
		}

		userID, err := h.services.AuthService.ValidateSession(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				log.Warn().Msg("unknown session id")
				utils.WriteMessage(w, "no session", http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("session validation ended with unexpected error")
			utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
