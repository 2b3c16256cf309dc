// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/models"
)

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		RegisterUser(gomock.Any(), "alice", "master-pw").
		Return(models.User{UserID: "u-1", Username: "alice"}, nil)

	rr := router.do(t, http.MethodPost, "/users/register", "", models.User{Username: "alice", Password: "master-pw"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "user registered", decodeMessage(t, rr))
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	router.mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		RegisterUser(gomock.Any(), "alice", "pw").
		Return(models.User{}, service.ErrUsernameTaken)

	rr := router.do(t, http.MethodPost, "/users/register", "", models.User{Username: "alice", Password: "pw"})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "username already exists", decodeMessage(t, rr))
}

func TestRegister_InvalidDataProvided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		RegisterUser(gomock.Any(), "", "pw").
		Return(models.User{}, service.ErrInvalidDataProvided)

	rr := router.do(t, http.MethodPost, "/users/register", "", models.User{Password: "pw"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	salt := bytes.Repeat([]byte{0xAB}, 32)
	auth.EXPECT().
		Login(gomock.Any(), "alice", "master-pw").
		Return(
			models.User{UserID: "u-1", Username: "alice", Salt: salt},
			models.Session{ID: "sess-1"},
			nil,
		)

	rr := router.do(t, http.MethodPost, "/users/login", "", models.User{Username: "alice", Password: "master-pw"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "sess-1", rr.Header().Get(sessionHeader))

	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, salt, got.Salt)
	// The session id never appears in the body.
	assert.NotContains(t, rr.Body.String(), "sess-1")
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		Login(gomock.Any(), "alice", "wrong").
		Return(models.User{}, models.Session{}, service.ErrBadLogin)

	rr := router.do(t, http.MethodPost, "/users/login", "", models.User{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid username/password", decodeMessage(t, rr))
	assert.Empty(t, rr.Header().Get(sessionHeader))
}

func TestLogout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, auth, _ := newTestHandler(t, ctrl)

	auth.EXPECT().
		ValidateSession(gomock.Any(), "sess-1").
		Return("u-1", nil)
	auth.EXPECT().
		Logout(gomock.Any(), "sess-1").
		Return(nil)

	rr := router.do(t, http.MethodPost, "/users/logout", "sess-1", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logged out", decodeMessage(t, rr))
}

func TestLogout_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _ := newTestHandler(t, ctrl)

	rr := router.do(t, http.MethodPost, "/users/logout", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
