package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

func TestService_Account(t *testing.T) {
	svc, _, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()

	t.Run("SignUp_Success", func(t *testing.T) {
		user, err := svc.SignUp(ctx, "Ada", "Lovelace", "ada@x.com", "secret123")

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "ada@x.com", user.Email)
		assert.NotEqual(t, "secret123", user.PasswordHash, "password must be stored hashed")
	})

	t.Run("SignUp_DuplicateEmail", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "Ada", "Again", "ada@x.com", "other456")

		require.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("LogIn_Success", func(t *testing.T) {
		user, err := svc.LogIn(ctx, "ada@x.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "ada@x.com", user.Email)
	})

	t.Run("LogIn_WrongPassword", func(t *testing.T) {
		_, err := svc.LogIn(ctx, "ada@x.com", "wrong")

		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("LogIn_UnknownEmail", func(t *testing.T) {
		_, err := svc.LogIn(ctx, "ghost@x.com", "secret123")

		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
