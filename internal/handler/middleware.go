package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/mustafamengutay/koly-sub000/internal/auth"
)

type callerKey struct{}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeFail(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			writeFail(w, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		claims, err := auth.ParseToken(h.jwtSecret, tokenStr)
		if err != nil {
			writeFail(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerID(r *http.Request) string {
	id, _ := r.Context().Value(callerKey{}).(string)
	return id
}
