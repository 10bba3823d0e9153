package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// GetVideoComments godoc
// @Summary      List a video's comments
// @Tags         comments
// @Produce      json
// @Param        videoId path string true "Video ID"
// @Param        page query int false "Page (1-based)"
// @Param        limit query int false "Page size"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /comments/video/{videoId} [get]
func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)

	comments, err := h.commentUseCase.GetVideoComments(c.Request.Context(), videoID, page, limit)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, comments, "Successfully fetched comments")
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body commentRequest true "Comment content"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /comments/video/{videoId} [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, usecase.BadRequest("Content required"))
		return
	}

	userID := c.GetString("user_id")
	comment, err := h.commentUseCase.AddComment(c.Request.Context(), videoID, userID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, comment, "Successfully created comment")
}

// UpdateComment godoc
// @Summary      Replace a comment's content
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body commentRequest true "New content"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := objectIDParam(c, "commentId")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, usecase.BadRequest("Content required"))
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), commentID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := objectIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.commentUseCase.DeleteComment(c.Request.Context(), commentID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Successfully deleted comment")
}
