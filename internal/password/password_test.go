package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheODDYSEY/sme-secuaware/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$")

	ok, err := password.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = password.Verify("wrong password", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashesAreSalted(t *testing.T) {
	first, err := password.Hash("demo123")
	require.NoError(t, err)
	second, err := password.Hash("demo123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	_, err := password.Verify("anything", "not-an-encoded-hash")
	require.Error(t, err)

	_, err = password.Verify("anything", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	require.Error(t, err)
}
