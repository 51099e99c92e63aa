package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logmycode/logmycode/internal/application/dto"
	"github.com/logmycode/logmycode/internal/application/service"
	apperrors "github.com/logmycode/logmycode/pkg/errors"
)

// CommitHandler handles commit ingestion HTTP requests
type CommitHandler struct {
	summaryService *service.SummaryService
}

// NewCommitHandler creates a new CommitHandler instance
func NewCommitHandler(summaryService *service.SummaryService) *CommitHandler {
	return &CommitHandler{summaryService: summaryService}
}

// IngestCommits handles POST /api/commits. A malformed body is rejected
// before anything touches the database.
func (h *CommitHandler) IngestCommits(c *gin.Context) {
	var req dto.BulkCommitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.summaryService.IngestCommits(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleError handles errors and returns appropriate HTTP responses
func (h *CommitHandler) handleError(c *gin.Context, err error) {
	c.Error(err)

	if apperrors.IsBadRequest(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payload",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
	})
}
