package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TheODDYSEY/sme-secuaware/internal/service"
	"github.com/TheODDYSEY/sme-secuaware/internal/token"
)

const claimsKey = "tokenClaims"

// TokenCookieName is the cookie carrying the signed credential for page
// navigation and API calls alike.
const TokenCookieName = "token"

// Auth verifies the presented token cryptographically and attaches its
// claims. Every protected handler runs behind this, regardless of whether
// the page gateway already waved the request through.
type Auth struct {
	AuthService *service.AuthService
}

// RequireToken ensures the request carries a valid bearer or cookie token.
func (m *Auth) RequireToken(c *gin.Context) {
	raw := extractToken(c)
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	claims, err := m.AuthService.VerifyToken(raw)
	if err != nil {
		// One generic outcome for malformed, tampered, and expired tokens.
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.Set(claimsKey, claims)
	c.Next()
}

// GetClaims exposes verified token claims to handlers.
func GetClaims(c *gin.Context) (token.Claims, bool) {
	value, ok := c.Get(claimsKey)
	if !ok {
		return token.Claims{}, false
	}
	claims, ok := value.(token.Claims)
	return claims, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}
