package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
	"github.com/mustafamengutay/koly-sub000/internal/repository"
	"github.com/mustafamengutay/koly-sub000/internal/repository/postgres"
	testpg "github.com/mustafamengutay/koly-sub000/internal/tests/postgres"
)

func setupService(t *testing.T) (*Service, repository.Repository, func()) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	connStr, teardown, err := testpg.Setup(ctx)
	require.NoError(t, err)

	repo, err := postgres.New(ctx, connStr)
	require.NoError(t, err)

	svc := New(repo)
	return svc, repo, func() {
		repo.(interface{ Close() }).Close()
		teardown()
	}
}

func signUp(t *testing.T, svc *Service, email string) domain.User {
	t.Helper()
	user, err := svc.SignUp(context.Background(), "Test", "User", email, "secret123")
	require.NoError(t, err)
	return user
}
