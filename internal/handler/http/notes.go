package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	var in models.NoteIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.VaultService.CreateNote(ctx, userID, in)
	if err != nil {
		h.writeVaultError(w, r, err, "note creation")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	records, err := h.services.VaultService.ListNotes(ctx, userID)
	if err != nil {
		h.writeVaultError(w, r, err, "note listing")
		return
	}
	if records == nil {
		records = []models.Note{}
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	rec, err := h.services.VaultService.GetNote(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeVaultError(w, r, err, "note lookup")
		return
	}

	_, _ = utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	var in models.NoteIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.VaultService.UpdateNote(ctx, userID, chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeVaultError(w, r, err, "note update")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, "no session", http.StatusUnauthorized)
		return
	}

	if err := h.services.VaultService.DeleteNote(ctx, userID, chi.URLParam(r, "id")); err != nil {
		h.writeVaultError(w, r, err, "note deletion")
		return
	}

	utils.WriteMessage(w, "deleted", http.StatusOK)
}
