package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"project_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" {
		writeFail(w, http.StatusBadRequest, "project_name is required")
		return
	}

	project, err := h.svc.CreateProject(r.Context(), callerID(r), req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"project": project})
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *Handler) ListLedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListLedProjects(r.Context(), callerID(r))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *Handler) ListJoinedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListJoinedProjects(r.Context(), callerID(r))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"projects": projects})
}

func (h *Handler) RenameProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"project_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" {
		writeFail(w, http.StatusBadRequest, "project_name is required")
		return
	}

	project, err := h.svc.RenameProject(r.Context(), callerID(r), chi.URLParam(r, "projectID"), req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"project": project})
}

func (h *Handler) RemoveProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveProject(r.Context(), callerID(r), chi.URLParam(r, "projectID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListParticipants(r.Context(), callerID(r), chi.URLParam(r, "projectID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"participants": members})
}

func (h *Handler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListLeaders(r.Context(), callerID(r), chi.URLParam(r, "projectID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"leaders": members})
}

func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveParticipant(r.Context(), callerID(r), chi.URLParam(r, "projectID"), chi.URLParam(r, "userID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *Handler) PromoteLeader(w http.ResponseWriter, r *http.Request) {
	err := h.svc.PromoteLeader(r.Context(), callerID(r), chi.URLParam(r, "projectID"), chi.URLParam(r, "userID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
