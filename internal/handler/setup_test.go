package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mustafamengutay/koly-sub000/internal/logger"
	"github.com/mustafamengutay/koly-sub000/internal/repository"
	"github.com/mustafamengutay/koly-sub000/internal/repository/postgres"
	"github.com/mustafamengutay/koly-sub000/internal/service"
	testpg "github.com/mustafamengutay/koly-sub000/internal/tests/postgres"
)

const testSecret = "test-secret"

func setupIntegration(t *testing.T) (*chi.Mux, repository.Repository, func()) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()

	connStr, teardown, err := testpg.Setup(ctx)
	require.NoError(t, err, "failed to setup postgres container")

	repo, err := postgres.New(ctx, connStr)
	require.NoError(t, err, "failed to connect to db")

	svc := service.New(repo)
	h := New(svc, logger.New(), testSecret, time.Hour)

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	return r, repo, func() {
		repo.(interface{ Close() }).Close()
		teardown()
	}
}

func doJSON(tb testing.TB, r *chi.Mux, method, path, token, body string) *httptest.ResponseRecorder {
	tb.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(tb testing.TB, w *httptest.ResponseRecorder) map[string]any {
	tb.Helper()
	var resp map[string]any
	require.NoError(tb, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// register signs a user up and logs them in, returning a bearer token and the
// user id.
func register(tb testing.TB, r *chi.Mux, name, email string) (token, userID string) {
	tb.Helper()

	signup := fmt.Sprintf(`{"name":%q,"surname":"Tester","email":%q,"password":"secret123"}`, name, email)
	w := doJSON(tb, r, http.MethodPost, "/auth/signup", "", signup)
	require.Equal(tb, http.StatusCreated, w.Code, w.Body.String())

	login := fmt.Sprintf(`{"email":%q,"password":"secret123"}`, email)
	w = doJSON(tb, r, http.MethodPost, "/auth/login", "", login)
	require.Equal(tb, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(tb, w)["data"].(map[string]any)
	token = data["token"].(string)
	userID = data["user"].(map[string]any)["user_id"].(string)
	return token, userID
}

func createProject(tb testing.TB, r *chi.Mux, token, name string) (projectID string) {
	tb.Helper()
	w := doJSON(tb, r, http.MethodPost, "/projects", token, fmt.Sprintf(`{"project_name":%q}`, name))
	require.Equal(tb, http.StatusCreated, w.Code, w.Body.String())
	data := decodeBody(tb, w)["data"].(map[string]any)
	return data["project"].(map[string]any)["project_id"].(string)
}
