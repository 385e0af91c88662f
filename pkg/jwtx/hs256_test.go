package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("test-secret"))
	now := time.Now()

	claims := NewClaims(
		"01JABCDEF0123456789ABCDEFG",
		"alice", "alice@example.com", "MEMBER", "", "ONLINE",
		time.Hour, "taskhive", now,
	)

	token, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01JABCDEF0123456789ABCDEFG", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "MEMBER", got.Role)
	require.Equal(t, "ONLINE", got.Status)
	require.Equal(t, "taskhive", got.Issuer)
}

func TestHS256RejectsTampering(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("test-secret"))
	claims := NewClaims("u1", "bob", "bob@example.com", "MEMBER", "", "ONLINE",
		time.Hour, "taskhive", time.Now())

	token, err := h.Sign(claims)
	require.NoError(t, err)

	t.Run("altered payload byte", func(t *testing.T) {
		tampered := []byte(token)
		// Flip a character in the middle of the token body.
		mid := len(tampered) / 2
		if tampered[mid] == 'a' {
			tampered[mid] = 'b'
		} else {
			tampered[mid] = 'a'
		}
		_, err := h.Verify(string(tampered))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewHS256([]byte("other-secret"))
		_, err := other.Verify(token)
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestHS256Expiry(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("test-secret"))

	t.Run("zero ttl is expired when checked later", func(t *testing.T) {
		claims := NewClaims("u1", "bob", "bob@example.com", "MEMBER", "", "ONLINE",
			0, "taskhive", time.Now().Add(-time.Second))
		token, err := h.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("negative ttl is expired", func(t *testing.T) {
		claims := NewClaims("u1", "bob", "bob@example.com", "MEMBER", "", "ONLINE",
			-time.Minute, "taskhive", time.Now())
		token, err := h.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	})
}
