package usecase

import (
	"context"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type PlaylistUseCase interface {
	CreatePlaylist(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error)
	GetUserPlaylists(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	GetPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error)
	UpdatePlaylist(ctx context.Context, id, name, description string) (*entity.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) (*entity.Playlist, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(playlistRepo persistent.PlaylistRepository, videoRepo persistent.VideoRepository, log *logger.Logger) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		logger:       log,
	}
}

func (uc *playlistUseCase) CreatePlaylist(ctx context.Context, ownerID, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, BadRequest("All fields are required")
	}

	playlist := &entity.Playlist{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}
	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		if err == persistent.ErrDuplicate {
			return nil, Conflict("Playlist with same name already exists")
		}
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, Internal("something went wrong while creating playlist")
	}
	return playlist, nil
}

func (uc *playlistUseCase) GetUserPlaylists(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	playlists, err := uc.playlistRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Error("Failed to fetch playlists for %s: %v", ownerID, err)
		return nil, Internal("error while fetching playlists")
	}
	if playlists == nil {
		playlists = []*entity.Playlist{}
	}
	return playlists, nil
}

func (uc *playlistUseCase) GetPlaylistByID(ctx context.Context, id string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Playlist not found")
		}
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) AddVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	exists, err := uc.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, Internal("something went wrong while checking the video")
	}
	if !exists {
		return nil, BadRequest("Video not found")
	}

	added, err := uc.playlistRepo.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Playlist not found")
		}
		uc.logger.Error("Failed to add video to playlist: %v", err)
		return nil, Internal("error while adding video to the playlist")
	}
	if !added {
		return nil, BadRequest("Video already present in the playlist")
	}

	return uc.playlistRepo.GetByID(ctx, playlistID)
}

func (uc *playlistUseCase) RemoveVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error) {
	removed, err := uc.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Playlist not found")
		}
		uc.logger.Error("Failed to remove video from playlist: %v", err)
		return nil, Internal("error while removing video from the playlist")
	}
	if !removed {
		return nil, BadRequest("Video not present in the playlist")
	}

	return uc.playlistRepo.GetByID(ctx, playlistID)
}

func (uc *playlistUseCase) UpdatePlaylist(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, BadRequest("All fields are required")
	}

	playlist, err := uc.playlistRepo.Update(ctx, id, name, description)
	if err != nil {
		switch err {
		case persistent.ErrNotFound:
			return nil, BadRequest("Playlist not found")
		case persistent.ErrDuplicate:
			return nil, Conflict("Playlist with same name already exists")
		}
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) DeletePlaylist(ctx context.Context, id string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.Delete(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Playlist not found")
		}
		return nil, err
	}
	return playlist, nil
}
