package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleVideoLike godoc
// @Summary      Toggle a like on a video
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /likes/toggle/video/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	userID := c.GetString("user_id")
	liked, like, err := h.likeUseCase.ToggleVideoLike(c.Request.Context(), videoID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"liked": liked, "like": like}, "Successfully toggled like")
}

// ToggleCommentLike godoc
// @Summary      Toggle a like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /likes/toggle/comment/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID, ok := objectIDParam(c, "commentId")
	if !ok {
		return
	}

	userID := c.GetString("user_id")
	liked, like, err := h.likeUseCase.ToggleCommentLike(c.Request.Context(), commentID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"liked": liked, "like": like}, "Successfully toggled like")
}

// ToggleTweetLike godoc
// @Summary      Toggle a like on a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /likes/toggle/tweet/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	tweetID, ok := objectIDParam(c, "tweetId")
	if !ok {
		return
	}

	userID := c.GetString("user_id")
	liked, like, err := h.likeUseCase.ToggleTweetLike(c.Request.Context(), tweetID, userID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"liked": liked, "like": like}, "Successfully toggled like")
}

// GetLikedVideos godoc
// @Summary      List the caller's liked videos
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	likes, err := h.likeUseCase.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, likes, "Liked videos fetched successfully")
}
