package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TheODDYSEY/sme-secuaware/internal/repository"
	"github.com/TheODDYSEY/sme-secuaware/internal/service"
)

// EducationHandler serves the published article catalog.
type EducationHandler struct {
	Education *service.EducationService
}

// NewEducationHandler creates the handler set.
func NewEducationHandler(education *service.EducationService) *EducationHandler {
	return &EducationHandler{Education: education}
}

// List returns article summaries filtered by category and difficulty.
func (h *EducationHandler) List(c *gin.Context) {
	filter := repository.ArticleFilter{
		Category:   strings.TrimSpace(c.Query("category")),
		Difficulty: strings.TrimSpace(c.Query("difficulty")),
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		filter.Limit = limit
	}

	content, err := h.Education.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if content == nil {
		content = []service.ArticleSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// Get returns one full article and counts the view.
func (h *EducationHandler) Get(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || articleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	article, err := h.Education.Get(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
