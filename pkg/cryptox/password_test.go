package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("round trip verifies", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := HashPassword("password-one")
		require.NoError(t, err)
		require.ErrorIs(t, VerifyPassword("password-two", hash), ErrPasswordMismatch)
	})

	t.Run("hashes are salted", func(t *testing.T) {
		a, err := HashPassword("same input")
		require.NoError(t, err)
		b, err := HashPassword("same input")
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("produces PHC encoding", func(t *testing.T) {
		hash, err := HashPassword("whatever")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	})
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!$aGFzaA",
	} {
		require.Error(t, VerifyPassword("pw", hash), "hash %q", hash)
	}
}
