package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// sessionHeader carries the opaque session identifier on every
// authenticated request and on the login response.
const sessionHeader = "session_id"

// requestIDHeader correlates client log lines with server log lines.
const requestIDHeader = "X-Request-Id"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	session string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with it
// and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or not a valid
// URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [ServerAdapter].
func (h *httpServerAdapter) SetSession(sessionID string) {
	h.session = strings.TrimSpace(sessionID)
}

// Session implements [ServerAdapter].
func (h *httpServerAdapter) Session() string {
	return h.session
}

// Register implements [ServerAdapter]. POST /users/register.
func (h *httpServerAdapter) Register(ctx context.Context, username, password string) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.request(ctx).
		SetBody(models.User{Username: username, Password: password}).
		SetResult(&msg).
		Post("/users/register")
	if err != nil {
		return models.MessageResponse{}, mapConnError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// Login implements [ServerAdapter]. POST /users/login. The account
// salt arrives in the body, the session identifier in the session_id
// response header; both are required for a usable session.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.User, models.Session, error) {
	var account models.User

	resp, err := h.request(ctx).
		SetBody(models.User{Username: username, Password: password}).
		SetResult(&account).
		Post("/users/login")
	if err != nil {
		return models.User{}, models.Session{}, mapConnError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, models.Session{}, err
	}

	sessionID := strings.TrimSpace(resp.Header().Get(sessionHeader))
	if sessionID == "" {
		return models.User{}, models.Session{}, &TransportError{
			Status:  resp.StatusCode(),
			Message: "login response missing session id",
		}
	}
	if len(account.Salt) == 0 {
		return models.User{}, models.Session{}, &TransportError{
			Status:  resp.StatusCode(),
			Message: "login response missing account salt",
		}
	}

	h.SetSession(sessionID)
	h.logger.Debug().Str("user_id", account.UserID).Msg("session established")

	return account, models.Session{ID: sessionID}, nil
}

// Logout implements [ServerAdapter]. POST /users/logout.
func (h *httpServerAdapter) Logout(ctx context.Context) (models.MessageResponse, error) {
	var msg models.MessageResponse

	resp, err := h.request(ctx).
		SetResult(&msg).
		Post("/users/logout")
	if err != nil {
		return models.MessageResponse{}, mapConnError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return msg, nil
}

// CreateCredential implements [ServerAdapter]. POST /passwords.
func (h *httpServerAdapter) CreateCredential(ctx context.Context, in models.CredentialIn) (models.Credential, error) {
	var rec models.Credential
	err := h.exchange(ctx, resty.MethodPost, "/passwords", in, &rec)
	return rec, err
}

// ListCredentials implements [ServerAdapter]. GET /passwords. Order is
// the server's: creation order.
func (h *httpServerAdapter) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	var recs []models.Credential
	err := h.exchange(ctx, resty.MethodGet, "/passwords", nil, &recs)
	return recs, err
}

// GetCredential implements [ServerAdapter]. GET /passwords/{id}.
func (h *httpServerAdapter) GetCredential(ctx context.Context, id string) (models.Credential, error) {
	var rec models.Credential
	err := h.exchange(ctx, resty.MethodGet, "/passwords/"+url.PathEscape(id), nil, &rec)
	return rec, err
}

// UpdateCredential implements [ServerAdapter]. PATCH /passwords/{id}.
func (h *httpServerAdapter) UpdateCredential(ctx context.Context, id string, in models.CredentialIn) (models.Credential, error) {
	var rec models.Credential
	err := h.exchange(ctx, resty.MethodPatch, "/passwords/"+url.PathEscape(id), in, &rec)
	return rec, err
}

// DeleteCredential implements [ServerAdapter]. DELETE /passwords/{id}.
func (h *httpServerAdapter) DeleteCredential(ctx context.Context, id string) (models.MessageResponse, error) {
	var msg models.MessageResponse
	err := h.exchange(ctx, resty.MethodDelete, "/passwords/"+url.PathEscape(id), nil, &msg)
	return msg, err
}

// CreateNote implements [ServerAdapter]. POST /notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, in models.NoteIn) (models.Note, error) {
	var rec models.Note
	err := h.exchange(ctx, resty.MethodPost, "/notes", in, &rec)
	return rec, err
}

// ListNotes implements [ServerAdapter]. GET /notes.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var recs []models.Note
	err := h.exchange(ctx, resty.MethodGet, "/notes", nil, &recs)
	return recs, err
}

// GetNote implements [ServerAdapter]. GET /notes/{id}.
func (h *httpServerAdapter) GetNote(ctx context.Context, id string) (models.Note, error) {
	var rec models.Note
	err := h.exchange(ctx, resty.MethodGet, "/notes/"+url.PathEscape(id), nil, &rec)
	return rec, err
}

// UpdateNote implements [ServerAdapter]. PATCH /notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, in models.NoteIn) (models.Note, error) {
	var rec models.Note
	err := h.exchange(ctx, resty.MethodPatch, "/notes/"+url.PathEscape(id), in, &rec)
	return rec, err
}

// DeleteNote implements [ServerAdapter]. DELETE /notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) (models.MessageResponse, error) {
	var msg models.MessageResponse
	err := h.exchange(ctx, resty.MethodDelete, "/notes/"+url.PathEscape(id), nil, &msg)
	return msg, err
}

// exchange performs one authenticated round-trip and decodes the
// success body into out.
func (h *httpServerAdapter) exchange(ctx context.Context, method, path string, body, out any) error {
	req := h.request(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return mapConnError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(requestIDHeader, uuid.NewString())
	if h.session != "" {
		req.SetHeader(sessionHeader, h.session)
	}
	return req
}
