package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := HashSecret("secret1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	require.NoError(t, VerifySecret("secret1", hash))
	require.ErrorIs(t, VerifySecret("wrong", hash), ErrMismatch)
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	a, err := HashSecret("secret1")
	require.NoError(t, err)
	b, err := HashSecret("secret1")
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	require.NoError(t, VerifySecret("secret1", a))
	require.NoError(t, VerifySecret("secret1", b))
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	} {
		err := VerifySecret("secret1", encoded)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrMismatch)
	}
}
