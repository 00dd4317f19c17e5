package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hashed)

	require.True(t, CheckPassword(hashed, "Secret123!"))
	require.False(t, CheckPassword(hashed, "wrong-password"))
}
