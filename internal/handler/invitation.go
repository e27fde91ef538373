package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) InviteUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Email == "" {
		writeFail(w, http.StatusBadRequest, "email is required")
		return
	}

	invitation, err := h.svc.InviteUser(r.Context(), callerID(r), chi.URLParam(r, "projectID"), req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"invitation": invitation})
}

func (h *Handler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AcceptInvitation(r.Context(), callerID(r), chi.URLParam(r, "projectID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *Handler) RejectInvitation(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RejectInvitation(r.Context(), callerID(r), chi.URLParam(r, "invitationID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *Handler) ListReceivedInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.svc.ListReceivedInvitations(r.Context(), callerID(r))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"invitations": invitations})
}
