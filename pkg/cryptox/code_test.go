package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	t.Parallel()

	for range 200 {
		code, err := GenerateVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestCodeMatches(t *testing.T) {
	t.Parallel()

	require.True(t, CodeMatches("123456", "123456"))
	require.False(t, CodeMatches("123456", "123457"))
	require.False(t, CodeMatches("", "123456"))
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("token-a")
	b := FingerprintToken("token-b")

	require.Len(t, a, 43)
	require.NotEqual(t, a, b)
	require.Equal(t, a, FingerprintToken("token-a"))

	require.True(t, FingerprintMatches("token-a", a))
	require.False(t, FingerprintMatches("token-b", a))
}
