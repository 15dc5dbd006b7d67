package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globex/wordcount/internal/storage"
)

func newTestAuth(t *testing.T) (*Auth, *storage.MemoryStorage) {
	s, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	return NewAuth(s, "test-secret"), s
}

func TestSignUpIssuesValidToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, user, err := auth.SignUp(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.DisplayName)

	claims, err := auth.ParseRawJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestSignUpNormalizesEmail(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, user, err := auth.SignUp(ctx, "Ada", "Ada@Example.COM", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := auth.SignUp(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, _, err = auth.SignUp(ctx, "Other Ada", "ada@example.com", "different-pass")
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestLogIn(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := auth.SignUp(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		token, user, err := auth.LogIn(ctx, "ada@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "Ada", user.DisplayName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.LogIn(ctx, "ada@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, _, err := auth.LogIn(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, user, err := auth.SignUp(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		userID, err := auth.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		otherStore, err := storage.CreateMemoryStorage()
		require.NoError(t, err)
		other := NewAuth(otherStore, "other-secret")

		foreign, err := other.BuildJWTString(user.ID)
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, foreign)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		// A validly signed token whose user is not in the store.
		ghost, err := auth.BuildJWTString("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)

		_, err = auth.Authenticate(ctx, ghost)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestVerifyToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, _, err := auth.SignUp(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	t.Run("matching email", func(t *testing.T) {
		assert.NoError(t, auth.VerifyToken(ctx, token, "ada@example.com"))
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		assert.NoError(t, auth.VerifyToken(ctx, token, "Ada@Example.COM"))
	})

	t.Run("different email", func(t *testing.T) {
		err := auth.VerifyToken(ctx, token, "someone-else@example.com")
		assert.ErrorIs(t, err, ErrEmailMismatch)
	})

	t.Run("invalid token", func(t *testing.T) {
		err := auth.VerifyToken(ctx, "garbage", "ada@example.com")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
