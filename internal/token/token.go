// Package token issues and verifies the signed credential presented on
// every protected request. Tokens are stateless: expiry is the only
// server-side termination, logout just discards the client-held copy.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	gojose "github.com/go-jose/go-jose/v4"
	gojwt "github.com/go-jose/go-jose/v4/jwt"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
)

// DefaultTTL is the token validity window when config leaves it unset.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is the single verification outcome for anything that is
// not a valid, unexpired token. Callers must not distinguish malformed,
// tampered, and expired tokens in user-facing messages.
var ErrInvalidToken = errors.New("token: invalid token")

// Claims are the verified assertions embedded in a token.
type Claims struct {
	AccountID   int64
	Email       string
	Role        string
	CompanyName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

type customClaims struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
}

// Service signs and verifies tokens with a secret held only by the server
// process.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option tweaks Service construction.
type Option func(*Service)

// WithClock overrides the time source, used by expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds a token service around the shared signing secret.
func NewService(secret []byte, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Service{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL exposes the configured validity window.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token asserting the account's identity and role.
func (s *Service) Issue(account domain.Account) (string, error) {
	signer, err := gojose.NewSigner(
		gojose.SigningKey{Algorithm: gojose.HS256, Key: s.secret},
		(&gojose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("new signer: %w", err)
	}

	now := s.now().UTC()
	std := gojwt.Claims{
		Subject:  strconv.FormatInt(account.ID, 10),
		IssuedAt: gojwt.NewNumericDate(now),
		Expiry:   gojwt.NewNumericDate(now.Add(s.ttl)),
	}
	custom := customClaims{
		Email:       account.Email,
		Role:        account.Role,
		CompanyName: account.CompanyName,
	}

	serialized, err := gojwt.Signed(signer).Claims(std).Claims(custom).Serialize()
	if err != nil {
		return "", fmt.Errorf("serialize token: %w", err)
	}
	return serialized, nil
}

// Verify checks the signature and expiry and returns the embedded claims.
// Every failure collapses to ErrInvalidToken.
func (s *Service) Verify(raw string) (Claims, error) {
	parsed, err := gojwt.ParseSigned(raw, []gojose.SignatureAlgorithm{gojose.HS256})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var std gojwt.Claims
	var custom customClaims
	if err := parsed.Claims(s.secret, &std, &custom); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if err := std.Validate(gojwt.Expected{Time: s.now()}); err != nil {
		return Claims{}, ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(std.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{
		AccountID:   accountID,
		Email:       custom.Email,
		Role:        custom.Role,
		CompanyName: custom.CompanyName,
	}
	if std.IssuedAt != nil {
		claims.IssuedAt = std.IssuedAt.Time()
	}
	if std.Expiry != nil {
		claims.ExpiresAt = std.Expiry.Time()
	}
	return claims, nil
}

// WellFormed reports whether the raw value has the three dot-separated
// segments of a compact JWS. The page gateway uses this as a cheap
// structural reject; it performs no cryptographic verification.
func WellFormed(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return true
}
