package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
	"github.com/mustafamengutay/koly-sub000/internal/service"
)

type Handler struct {
	svc       *service.Service
	log       *slog.Logger
	jwtSecret string
	jwtTTL    time.Duration
}

func New(svc *service.Service, log *slog.Logger, jwtSecret string, jwtTTL time.Duration) *Handler {
	return &Handler{svc: svc, log: log, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/signup", h.SignUp)
	r.Post("/auth/login", h.LogIn)
	r.Get("/health", h.HealthCheck)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/projects", h.CreateProject)
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/led", h.ListLedProjects)
		r.Get("/projects/joined", h.ListJoinedProjects)
		r.Patch("/projects/{projectID}", h.RenameProject)
		r.Delete("/projects/{projectID}", h.RemoveProject)
		r.Get("/projects/{projectID}/participants", h.ListParticipants)
		r.Get("/projects/{projectID}/leaders", h.ListLeaders)
		r.Delete("/projects/{projectID}/participants/{userID}", h.RemoveParticipant)
		r.Post("/projects/{projectID}/leaders/{userID}", h.PromoteLeader)

		r.Post("/projects/{projectID}/issues", h.ReportIssue)
		r.Get("/projects/{projectID}/issues", h.ListProjectIssues)
		r.Get("/projects/{projectID}/issues/search", h.SearchIssues)
		r.Post("/issues/{issueID}/adopt", h.AdoptIssue)
		r.Post("/issues/{issueID}/release", h.ReleaseIssue)
		r.Post("/issues/{issueID}/complete", h.CompleteIssue)
		r.Post("/issues/{issueID}/assign", h.AssignIssue)
		r.Post("/issues/{issueID}/unassign", h.UnassignIssue)
		r.Delete("/issues/{issueID}", h.RemoveIssue)

		r.Post("/projects/{projectID}/invitations", h.InviteUser)
		r.Post("/projects/{projectID}/invitations/accept", h.AcceptInvitation)
		r.Get("/invitations", h.ListReceivedInvitations)
		r.Delete("/invitations/{invitationID}", h.RejectInvitation)
	})
}

// Response envelope: "success" carries data, "fail" carries a client-facing
// message, "error" is an internal failure.
type response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, response{Status: "success", Data: data})
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Status: "fail", Message: message})
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		writeFail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeFail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrNotParticipant),
		errors.Is(err, domain.ErrNotLeader),
		errors.Is(err, domain.ErrAlreadyParticipant),
		errors.Is(err, domain.ErrAlreadyLeader),
		errors.Is(err, domain.ErrLastLeader),
		errors.Is(err, domain.ErrIssueAdopted),
		errors.Is(err, domain.ErrIssueCompleted),
		errors.Is(err, domain.ErrNotReporter),
		errors.Is(err, domain.ErrNotAdopter),
		errors.Is(err, domain.ErrInvitationSent):
		writeFail(w, http.StatusConflict, err.Error())
	default:
		h.log.Error("internal server error", "error", err)
		writeJSON(w, http.StatusInternalServerError, response{Status: "error", Message: "internal server error"})
	}
}
