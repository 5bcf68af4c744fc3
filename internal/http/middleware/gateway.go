package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TheODDYSEY/sme-secuaware/internal/token"
)

// Gateway is the page-navigation checkpoint. It is a cheap structural
// reject for obviously missing or malformed token cookies so protected
// pages never render for anonymous visitors; it does not verify signatures.
// API handlers stay the authoritative gate and re-check cryptographically.
type Gateway struct {
	publicPaths map[string]struct{}
}

// NewGateway builds the checkpoint with the fixed public page allow-list.
func NewGateway() *Gateway {
	return &Gateway{
		publicPaths: map[string]struct{}{
			"/":         {},
			"/login":    {},
			"/register": {},
		},
	}
}

// Allow evaluates the request top to bottom, first match wins. It returns
// true when the page may render; otherwise it has already written the
// redirect to /login.
func (g *Gateway) Allow(c *gin.Context) bool {
	path := c.Request.URL.Path

	// Static assets and API namespaces bypass the gateway entirely; API
	// endpoints perform their own token verification.
	if bypassesGateway(path) {
		return true
	}

	if _, ok := g.publicPaths[path]; ok {
		return true
	}

	cookie, err := c.Cookie(TokenCookieName)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return false
	}

	if !token.WellFormed(cookie) {
		deleteTokenCookie(c)
		c.Redirect(http.StatusFound, "/login")
		return false
	}

	return true
}

func bypassesGateway(path string) bool {
	return strings.HasPrefix(path, "/auth") ||
		strings.HasPrefix(path, "/assessment") ||
		strings.HasPrefix(path, "/threats") ||
		strings.HasPrefix(path, "/education") ||
		strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/assets/") ||
		path == "/favicon.ico" ||
		strings.Contains(path, ".")
}

func deleteTokenCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
