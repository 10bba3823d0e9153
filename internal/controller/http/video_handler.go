package http

import (
	"net/http"
	"strconv"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

// PublishVideo godoc
// @Summary      Publish a new video
// @Description  Upload a video file and thumbnail and create a published video
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string true "Video description"
// @Param        videoFile formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /videos/publishVideo [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID := c.GetString("user_id")

	title := c.PostForm("title")
	description := c.PostForm("description")

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		fail(c, usecase.BadRequest("video file is required"))
		return
	}
	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		fail(c, usecase.BadRequest("thumbnail file is required"))
		return
	}

	video, err := h.videoUseCase.Publish(c.Request.Context(), userID, title, description, videoFile, thumbnail)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, video, "Video uploaded successfully")
}

// GetVideoByID godoc
// @Summary      Get video details
// @Tags         videos
// @Produce      json
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/video-details/{videoId} [get]
func (h *VideoHandler) GetVideoByID(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoUseCase.GetByID(c.Request.Context(), videoID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video fetched successfully")
}

// GetAllVideos godoc
// @Summary      List videos
// @Description  List videos with optional owner filter, title search, sorting and pagination. A title query restricts results to published videos.
// @Tags         videos
// @Produce      json
// @Param        page query int false "Page (1-based)"
// @Param        limit query int false "Page size"
// @Param        query query string false "Title substring (case-insensitive)"
// @Param        sortBy query string false "Sort field"
// @Param        sortType query string false "asc or desc"
// @Param        userId query string false "Filter by owner"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/get-videos [get]
func (h *VideoHandler) GetAllVideos(c *gin.Context) {
	filter := entity.VideoFilter{
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortDesc: c.Query("sortType") == "desc",
		Page:     intQuery(c, "page", 1),
		Limit:    intQuery(c, "limit", 10),
	}

	if userID := c.Query("userId"); userID != "" {
		if _, err := primitive.ObjectIDFromHex(userID); err != nil {
			fail(c, usecase.BadRequest("Invalid userId"))
			return
		}
		filter.OwnerID = userID
	}

	videos, err := h.videoUseCase.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Videos fetched successfully")
}

// UpdateVideoDetails godoc
// @Summary      Update title, description and thumbnail
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        title formData string true "New title"
// @Param        description formData string true "New description"
// @Param        thumbnail formData file true "New thumbnail"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/update-video-details/{videoId} [patch]
func (h *VideoHandler) UpdateVideoDetails(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		fail(c, usecase.BadRequest("Thumbnail file is missing"))
		return
	}

	video, err := h.videoUseCase.UpdateDetails(c.Request.Context(), videoID, title, description, thumbnail)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video details updated successfully")
}

// UpdateVideoFile godoc
// @Summary      Replace the video file
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        videoFile formData file true "New video file"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/update-video/{videoId} [patch]
func (h *VideoHandler) UpdateVideoFile(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		fail(c, usecase.BadRequest("Video file is missing"))
		return
	}

	video, err := h.videoUseCase.UpdateFile(c.Request.Context(), videoID, videoFile)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video updated successfully")
}

// DeleteVideo godoc
// @Summary      Delete a video and its comments, likes and playlist entries
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/delete-video/{videoId} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoUseCase.Delete(c.Request.Context(), videoID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video deleted successfully")
}

// TogglePublishStatus godoc
// @Summary      Flip the publication flag
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/change-published-status/{videoId} [patch]
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoUseCase.TogglePublish(c.Request.Context(), videoID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Published status toggled successfully")
}

// IncrementView godoc
// @Summary      Register a playback view
// @Tags         videos
// @Produce      json
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /videos/view/{videoId} [post]
func (h *VideoHandler) IncrementView(c *gin.Context) {
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videoUseCase.IncrementView(c.Request.Context(), videoID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, video, "View registered successfully")
}

func intQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
