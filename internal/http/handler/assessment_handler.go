package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheODDYSEY/sme-secuaware/internal/domain"
	"github.com/TheODDYSEY/sme-secuaware/internal/http/middleware"
	"github.com/TheODDYSEY/sme-secuaware/internal/service"
)

// AssessmentHandler serves questionnaire submission and history.
type AssessmentHandler struct {
	Assessments *service.AssessmentService
}

// NewAssessmentHandler creates the handler set.
func NewAssessmentHandler(assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Assessments: assessments}
}

// List returns the caller's latest assessments, newest first.
func (h *AssessmentHandler) List(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	assessments, err := h.Assessments.Latest(c.Request.Context(), claims.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	if assessments == nil {
		assessments = []service.AssessmentView{}
	}
	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

type submitRequest struct {
	Responses domain.Responses `json:"responses"`
}

// Submit scores a completed questionnaire and persists the outcome.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complete assessment responses required"})
		return
	}

	assessment, err := h.Assessments.Submit(c.Request.Context(), claims.AccountID, req.Responses)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Assessment completed successfully",
		"assessment": gin.H{
			"score":           assessment.Score,
			"riskLevel":       assessment.RiskLevel,
			"recommendations": assessment.Recommendations,
			"completedAt":     assessment.CompletedAt,
		},
	})
}
