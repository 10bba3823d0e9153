package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type playlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Description  Playlist names are unique per owner.
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body playlistRequest true "Name and description"
// @Success      201  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, usecase.BadRequest("All fields are required"))
		return
	}

	userID := c.GetString("user_id")
	playlist, err := h.playlistUseCase.CreatePlaylist(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// GetUserPlaylists godoc
// @Summary      List a user's playlists
// @Tags         playlists
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /playlists/user/{userId} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	userID, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	playlists, err := h.playlistUseCase.GetUserPlaylists(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// GetPlaylistByID godoc
// @Summary      Get a playlist
// @Tags         playlists
// @Produce      json
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylistByID(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlistUseCase.GetPlaylistByID(c.Request.Context(), playlistID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// AddVideoToPlaylist godoc
// @Summary      Add a video to a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /playlists/add/{playlistId}/{videoId} [patch]
func (h *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	playlist, err := h.playlistUseCase.AddVideo(c.Request.Context(), playlistID, videoID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Video added successfully")
}

// RemoveVideoFromPlaylist godoc
// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        videoId path string true "Video ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /playlists/remove/{playlistId}/{videoId} [patch]
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}
	videoID, ok := objectIDParam(c, "videoId")
	if !ok {
		return
	}

	playlist, err := h.playlistUseCase.RemoveVideo(c.Request.Context(), playlistID, videoID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Video removed successfully")
}

// UpdatePlaylist godoc
// @Summary      Replace a playlist's name and description
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Param        request body playlistRequest true "New name and description"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /playlists/{playlistId} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, usecase.BadRequest("All fields are required"))
		return
	}

	playlist, err := h.playlistUseCase.UpdatePlaylist(c.Request.Context(), playlistID, req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist godoc
// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId path string true "Playlist ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	playlistID, ok := objectIDParam(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlistUseCase.DeletePlaylist(c.Request.Context(), playlistID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist deleted successfully")
}
