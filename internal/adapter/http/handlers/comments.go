package handlers

import (
	"net/http"

	"github.com/islamdev99/GameDevTask/internal/adapter/http/dto"
	"github.com/islamdev99/GameDevTask/internal/adapter/http/mapper"
	"github.com/islamdev99/GameDevTask/internal/core/domain"
	"github.com/islamdev99/GameDevTask/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "failed to list comments", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), domain.CreateCommentInput{
		TaskID:   taskID,
		AuthorID: req.AuthorID,
		Body:     req.Body,
	})
	if err != nil {
		respondError(c, err, "failed to create comment", zap.Int64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete comment", zap.Int64("comment_id", id))
		return
	}

	c.Status(http.StatusNoContent)
}
