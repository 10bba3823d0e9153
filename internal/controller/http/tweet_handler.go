package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body tweetRequest true "Tweet content"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, usecase.BadRequest("Content required"))
		return
	}

	userID := c.GetString("user_id")
	tweet, err := h.tweetUseCase.CreateTweet(c.Request.Context(), userID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, tweet, "Tweeted successfully")
}

// GetUserTweets godoc
// @Summary      List a user's tweets
// @Tags         tweets
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /tweets/user/{userId} [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	userID, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	tweets, err := h.tweetUseCase.GetUserTweets(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet godoc
// @Summary      Replace a tweet's content
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Param        request body tweetRequest true "New content"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /tweets/{tweetId} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	tweetID, ok := objectIDParam(c, "tweetId")
	if !ok {
		return
	}

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, usecase.BadRequest("Content required"))
		return
	}

	tweet, err := h.tweetUseCase.UpdateTweet(c.Request.Context(), tweetID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId path string true "Tweet ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /tweets/{tweetId} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID, ok := objectIDParam(c, "tweetId")
	if !ok {
		return
	}

	tweet, err := h.tweetUseCase.DeleteTweet(c.Request.Context(), tweetID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet deleted successfully")
}
