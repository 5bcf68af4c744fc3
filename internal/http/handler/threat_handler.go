package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheODDYSEY/sme-secuaware/internal/http/middleware"
	"github.com/TheODDYSEY/sme-secuaware/internal/service"
)

// ThreatHandler serves the threat alert catalog.
type ThreatHandler struct {
	Threats *service.ThreatService
}

// NewThreatHandler creates the handler set.
func NewThreatHandler(threats *service.ThreatService) *ThreatHandler {
	return &ThreatHandler{Threats: threats}
}

// List returns alerts matched to the caller's industry.
func (h *ThreatHandler) List(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	threats, err := h.Threats.ListForAccount(c.Request.Context(), claims.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	if threats == nil {
		threats = []service.ThreatView{}
	}
	c.JSON(http.StatusOK, gin.H{"threats": threats})
}

type createThreatRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Severity           string     `json:"severity"`
	Category           string     `json:"category"`
	AffectedIndustries []string   `json:"affectedIndustries"`
	Recommendations    []string   `json:"recommendations"`
	ExpiresAt          *time.Time `json:"expiresAt"`
}

// Create publishes a new alert; admin role only.
func (h *ThreatHandler) Create(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createThreatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields missing"})
		return
	}

	threat, err := h.Threats.Create(c.Request.Context(), claims.Role, service.CreateThreatInput{
		Title:              req.Title,
		Description:        req.Description,
		Severity:           req.Severity,
		Category:           req.Category,
		AffectedIndustries: req.AffectedIndustries,
		Recommendations:    req.Recommendations,
		ExpiresAt:          req.ExpiresAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Threat alert created",
		"threat":  threat,
	})
}
