package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/service"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
)

// ListTags returns the caller's tags ordered by name, with task counts.
func (h *Handler) ListTags(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tags, err := h.Tags.List(c.Request.Context(), userID)
	if err != nil {
		internalError(c, "list tags failed", err)
		return
	}
	if tags == nil {
		tags = []*domain.TagWithCount{}
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag stores a new tag; a name the caller already uses is a conflict,
// the same name under another user is not.
func (h *Handler) CreateTag(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req validation.CreateTagRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	in, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.Tags.Create(c.Request.Context(), userID, in)
	if err != nil {
		if errors.Is(err, service.ErrTagNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tag with this name already exists"})
			return
		}
		internalError(c, "create tag failed", err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) UpdateTag(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req validation.UpdateTagRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.Tags.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		case errors.Is(err, service.ErrTagNameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tag with this name already exists"})
		default:
			internalError(c, "update tag failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag; its task links are removed with it.
func (h *Handler) DeleteTag(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Tags.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}
		internalError(c, "delete tag failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
