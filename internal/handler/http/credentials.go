// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	var in models.CredentialIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.VaultService.CreateCredential(ctx, userID, in)
	if err != nil {
		h.writeVaultError(w, r, err, "credential creation")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	records, err := h.services.VaultService.ListCredentials(ctx, userID)
	if err != nil {
		h.writeVaultError(w, r, err, "credential listing")
		return
	}
	if records == nil {
		records = []models.Credential{}
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	rec, err := h.services.VaultService.GetCredential(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeVaultError(w, r, err, "credential lookup")
		return
	}

	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	var in models.CredentialIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.VaultService.UpdateCredential(ctx, userID, chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeVaultError(w, r, err, "credential update")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	if err := h.services.VaultService.DeleteCredential(ctx, userID, chi.URLParam(r, "id")); err != nil {
		h.writeVaultError(w, r, err, "credential deletion")
		return
	}

	utils.WriteMessage(w, "deleted", http.StatusOK)
}

// writeVaultError maps vault service failures onto HTTP statuses. The
// op string names the failed operation in the log line only.
func (h *Handler) writeVaultError(w http.ResponseWriter, r *http.Request, err error, op string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg(op + ": invalid data provided")
		utils.WriteMessage(w, "invalid data provided", http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		log.Err(err).Msg(op + ": record not found")
		utils.WriteMessage(w, "record not found", http.StatusNotFound)
	default:
		log.Err(err).Msg(op + " ended with unexpected error")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
