package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logmycode/logmycode/internal/application/service"
	apperrors "github.com/logmycode/logmycode/pkg/errors"
)

// SummaryHandler handles summary retrieval HTTP requests
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler instance
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetDailySummary handles GET /api/daily-summary
func (h *SummaryHandler) GetDailySummary(c *gin.Context) {
	userID := c.Query("userId")
	date := c.Query("date")
	if userID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing userId or date",
		})
		return
	}

	resp, err := h.summaryService.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRecentSummaries handles GET /api/recent-summaries
func (h *SummaryHandler) GetRecentSummaries(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing userId",
		})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing userId or date",
		})
		return
	}

	resp, err := h.summaryService.RecentSummaries(c.Request.Context(), userID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleError handles errors and returns appropriate HTTP responses
func (h *SummaryHandler) handleError(c *gin.Context, err error) {
	c.Error(err)

	if apperrors.IsBadRequest(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid userId or date",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
	})
}
