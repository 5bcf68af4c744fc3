package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/TheODDYSEY/sme-secuaware/internal/config"
	"github.com/TheODDYSEY/sme-secuaware/internal/http/handler"
	httpmiddleware "github.com/TheODDYSEY/sme-secuaware/internal/http/middleware"
	"github.com/TheODDYSEY/sme-secuaware/internal/middleware"
)

// NewRouter wires Gin routes and middleware.
func NewRouter(
	cfg config.Config,
	authHandler *handler.AuthHandler,
	assessmentHandler *handler.AssessmentHandler,
	threatHandler *handler.ThreatHandler,
	educationHandler *handler.EducationHandler,
	authMiddleware *httpmiddleware.Auth,
	gateway *httpmiddleware.Gateway,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestLogger(nil))
	if rateLimiter != nil {
		r.Use(rateLimiter.Middleware())
	}
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authMiddleware.RequireToken, authHandler.Me)
	}

	assessment := r.Group("/assessment", authMiddleware.RequireToken)
	{
		assessment.GET("", assessmentHandler.List)
		assessment.POST("", assessmentHandler.Submit)
	}

	threats := r.Group("/threats", authMiddleware.RequireToken)
	{
		threats.GET("", threatHandler.List)
		threats.POST("", threatHandler.Create)
	}

	education := r.Group("/education", authMiddleware.RequireToken)
	{
		education.GET("", educationHandler.List)
		education.GET("/:id", educationHandler.Get)
	}

	// Pages are served as static files behind the gateway; auth logic
	// stays on the API routes above.
	attachUIRoutes(r, gateway, cfg.UIDistDir)

	return r
}

func attachUIRoutes(r *gin.Engine, gateway *httpmiddleware.Gateway, distDir string) {
	indexPath := filepath.Join(distDir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if isAPIPath(path) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		if !gateway.Allow(c) {
			return
		}

		if filePath, ok := safeJoin(distDir, path); ok {
			if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
				c.File(filePath)
				return
			}
		}

		c.File(indexPath)
	})
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/auth") ||
		strings.HasPrefix(path, "/assessment") ||
		strings.HasPrefix(path, "/threats") ||
		strings.HasPrefix(path, "/education")
}

func safeJoin(baseDir, requestPath string) (string, bool) {
	trimmed := strings.TrimPrefix(requestPath, "/")
	cleaned := filepath.Clean(trimmed)
	if cleaned == "." {
		return filepath.Join(baseDir, cleaned), true
	}
	if strings.HasPrefix(cleaned, "..") {
		return "", false
	}
	return filepath.Join(baseDir, cleaned), true
}
