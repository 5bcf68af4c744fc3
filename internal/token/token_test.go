package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/token"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func testAccount() domain.Account {
	return domain.Account{
		ID:          42,
		Email:       "owner@duka.co.ke",
		Role:        domain.RoleOwner,
		CompanyName: "Duka Traders",
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := token.NewService(testSecret, 0)

	raw, err := svc.Issue(testAccount())
	require.NoError(t, err)
	require.True(t, token.WellFormed(raw))

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.AccountID)
	require.Equal(t, "owner@duka.co.ke", claims.Email)
	require.Equal(t, domain.RoleOwner, claims.Role)
	require.Equal(t, "Duka Traders", claims.CompanyName)
	require.Equal(t, token.DefaultTTL, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestVerifyExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt
	svc := token.NewService(testSecret, 0, token.WithClock(func() time.Time { return current }))

	raw, err := svc.Issue(testAccount())
	require.NoError(t, err)

	current = issuedAt.Add(6 * 24 * time.Hour)
	_, err = svc.Verify(raw)
	require.NoError(t, err)

	current = issuedAt.Add(8 * 24 * time.Hour)
	_, err = svc.Verify(raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyRejectsTamperedAndMalformed(t *testing.T) {
	svc := token.NewService(testSecret, time.Hour)

	raw, err := svc.Issue(testAccount())
	require.NoError(t, err)

	_, err = svc.Verify(raw + "x")
	require.ErrorIs(t, err, token.ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	require.ErrorIs(t, err, token.ErrInvalidToken)

	other := token.NewService([]byte("another-secret-another-secret-32"), time.Hour)
	_, err = other.Verify(raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestWellFormed(t *testing.T) {
	require.True(t, token.WellFormed("aaa.bbb.ccc"))
	require.False(t, token.WellFormed(""))
	require.False(t, token.WellFormed("aaa.bbb"))
	require.False(t, token.WellFormed("aaa.bbb.ccc.ddd"))
	require.False(t, token.WellFormed("aaa..ccc"))
}
