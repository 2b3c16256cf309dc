// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/models"
)

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	// ValidateSession must not be consulted at all.
	rr := router.do(t, http.MethodGet, "/passwords", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "no session", decodeMessage(t, rr))
}

func TestSessionMiddleware_UnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		ValidateSession(gomock.Any(), "dead-session").
		Return("", service.ErrNoSession)

	rr := router.do(t, http.MethodGet, "/passwords", "dead-session", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSessionMiddleware_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		ValidateSession(gomock.Any(), "sess-1").
		Return("", assert.AnError)

	rr := router.do(t, http.MethodGet, "/passwords", "sess-1", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSessionMiddleware_UserIDReachesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, vault := newTestHandler(t, ctrl)

	auth.EXPECT().
		ValidateSession(gomock.Any(), "sess-1").
		Return("u-42", nil)

	vault.EXPECT().
		ListNotes(gomock.Any(), "u-42").
		Return([]models.Note{}, nil)

	rr := router.do(t, http.MethodGet, "/notes", "sess-1", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPublicRoutes_SkipSessionMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		RegisterUser(gomock.Any(), "bob", "pw").
		Return(models.User{UserID: "u-2"}, nil)

	// No session header, still accepted.
	rr := router.do(t, http.MethodPost, "/users/register", "", models.User{Username: "bob", Password: "pw"})

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestTraceIDHeader_Echoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{UserID: "u-1"}, models.Session{ID: "sess-1"}, nil)

	rr := router.do(t, http.MethodPost, "/users/login", "", models.User{Username: "alice", Password: "pw"})

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
