package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, VerifyPassword("secret1", hash))
	require.False(t, VerifyPassword("secret2", hash))
	require.False(t, VerifyPassword("secret1", "not-a-bcrypt-digest"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("secret1", first))
	require.True(t, VerifyPassword("secret1", second))
}
