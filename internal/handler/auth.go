package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mustafamengutay/koly-sub000/internal/auth"
)

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Surname  string `json:"surname"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Name == "" || req.Surname == "" || req.Email == "" || req.Password == "" {
		writeFail(w, http.StatusBadRequest, "name, surname, email and password are required")
		return
	}

	user, err := h.svc.SignUp(r.Context(), req.Name, req.Surname, req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeFail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.svc.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	token, expiresAt, err := auth.GenerateToken(h.jwtSecret, user.ID, h.jwtTTL)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_at": expiresAt,
		"user":       user,
	})
}
