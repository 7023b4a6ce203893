package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TaskStats returns aggregate counts over the caller's full task
// collection as of the current instant.
func (h *Handler) TaskStats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Stats.Overview(c.Request.Context(), userID, time.Now())
	if err != nil {
		internalError(c, "task stats failed", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
