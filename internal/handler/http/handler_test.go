package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/mock"
	"github.com/MKhiriev/go-secret-vault/internal/service"
)

// newTestHandler wires a Handler over mocked services and returns the
// fully initialised router so requests pass through the middleware
// chain exactly as they do in production.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*testRouter, *mock.MockAuthService, *mock.MockVaultService) {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	vault := mock.NewMockVaultService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:  auth,
		VaultService: vault,
	}, logger.Nop())

	return &testRouter{h.Init()}, auth, vault
}

// testRouter wraps the mux with a request helper used across handler tests.
type testRouter struct {
	mux http.Handler
}

// do performs a request against the router and returns the recorder.
// A non-nil body is JSON-encoded; session is attached as the session
// header when non-empty.
func (c *testRouter) do(t *testing.T, method, target, session string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}

	rr := httptest.NewRecorder()
	c.mux.ServeHTTP(rr, req)
	return rr
}

// decodeMessage extracts the "message" field from an error or
// acknowledgement body.
func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out.Message
}
