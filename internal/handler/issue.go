package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

func parseIssueType(v string) (domain.IssueType, bool) {
	switch t := domain.IssueType(v); t {
	case domain.IssueTypeBug, domain.IssueTypeFeature, domain.IssueTypeImprovement:
		return t, true
	}
	return "", false
}

func (h *Handler) ReportIssue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Title == "" {
		writeFail(w, http.StatusBadRequest, "title is required")
		return
	}
	issueType, ok := parseIssueType(req.Type)
	if !ok {
		writeFail(w, http.StatusBadRequest, "type must be one of bug, feature, improvement")
		return
	}

	issue, err := h.svc.ReportIssue(r.Context(), callerID(r), chi.URLParam(r, "projectID"), req.Title, req.Description, issueType)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"issue": issue})
}

func (h *Handler) ListProjectIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.svc.ListProjectIssues(r.Context(), callerID(r), chi.URLParam(r, "projectID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issues": issues})
}

func (h *Handler) SearchIssues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeFail(w, http.StatusBadRequest, "q is required")
		return
	}

	issues, err := h.svc.SearchIssues(r.Context(), callerID(r), chi.URLParam(r, "projectID"), query)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issues": issues})
}

func (h *Handler) AdoptIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := h.svc.AdoptIssue(r.Context(), callerID(r), chi.URLParam(r, "issueID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issue": issue})
}

func (h *Handler) ReleaseIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := h.svc.ReleaseIssue(r.Context(), callerID(r), chi.URLParam(r, "issueID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issue": issue})
}

func (h *Handler) CompleteIssue(w http.ResponseWriter, r *http.Request) {
	issue, err := h.svc.CompleteIssue(r.Context(), callerID(r), chi.URLParam(r, "issueID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issue": issue})
}

func (h *Handler) RemoveIssue(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveIssue(r.Context(), callerID(r), chi.URLParam(r, "issueID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *Handler) AssignIssue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParticipantID string `json:"participant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ParticipantID == "" {
		writeFail(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	issue, err := h.svc.AssignIssue(r.Context(), callerID(r), chi.URLParam(r, "issueID"), req.ParticipantID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issue": issue})
}

func (h *Handler) UnassignIssue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParticipantID string `json:"participant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ParticipantID == "" {
		writeFail(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	issue, err := h.svc.UnassignIssue(r.Context(), callerID(r), chi.URLParam(r, "issueID"), req.ParticipantID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"issue": issue})
}
