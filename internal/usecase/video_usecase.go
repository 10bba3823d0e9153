package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/media"
	"vidtube/pkg/queue"

	"github.com/google/uuid"
)

type VideoUseCase interface {
	Publish(ctx context.Context, ownerID, title, description string, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error)
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	List(ctx context.Context, filter entity.VideoFilter) ([]*entity.Video, error)
	UpdateDetails(ctx context.Context, id, title, description string, thumbnail *multipart.FileHeader) (*entity.Video, error)
	UpdateFile(ctx context.Context, id string, videoFile *multipart.FileHeader) (*entity.Video, error)
	Delete(ctx context.Context, id string) (*entity.Video, error)
	TogglePublish(ctx context.Context, id string) (*entity.Video, error)
	IncrementView(ctx context.Context, id string) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo    persistent.VideoRepository
	commentRepo  persistent.CommentRepository
	likeRepo     persistent.LikeRepository
	playlistRepo persistent.PlaylistRepository
	store        FileStore
	prober       media.Prober
	publisher    EventPublisher
	logger       *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	likeRepo persistent.LikeRepository,
	playlistRepo persistent.PlaylistRepository,
	store FileStore,
	prober media.Prober,
	publisher EventPublisher,
	log *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:    videoRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		playlistRepo: playlistRepo,
		store:        store,
		prober:       prober,
		publisher:    publisher,
		logger:       log,
	}
}

func (uc *videoUseCase) Publish(ctx context.Context, ownerID, title, description string, videoFile, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, BadRequest("All fields are required")
	}

	// The video file hits local disk first so ffprobe can read it.
	tmpPath, cleanup, err := saveTemp(videoFile)
	if err != nil {
		uc.logger.Error("Failed to stage video file: %v", err)
		return nil, Internal("error while uploading video file")
	}
	defer cleanup()

	duration, err := uc.prober.Duration(tmpPath)
	if err != nil {
		uc.logger.Error("Failed to probe video duration: %v", err)
		return nil, Internal("error while uploading video file")
	}

	// Uploads are sequential: video first, then thumbnail. A failure at
	// either step aborts before any document is created.
	videoURL, err := uc.uploadFromPath(tmpPath, videoFile, ownerID, "videos", "video/mp4")
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, Internal("error while uploading video file")
	}

	thumbnailURL, err := uc.upload(thumbnail, ownerID, "thumbnails", "image/jpeg")
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		return nil, Internal("error while uploading thumbnail file")
	}

	video := &entity.Video{
		Title:       title,
		Description: description,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    duration,
		OwnerID:     ownerID,
		IsPublished: true,
	}

	if err := uc.videoRepo.Create(ctx, video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, Internal("something went wrong while adding the video")
	}

	if uc.publisher != nil {
		go func() {
			err := uc.publisher.Publish(queue.VideoPublishedKey, queue.Event{
				Type:     queue.VideoPublishedKey,
				ActorID:  ownerID,
				TargetID: video.ID,
				Title:    video.Title,
			})
			if err != nil {
				uc.logger.Warn("Failed to publish video event: %v", err)
			}
		}()
	}

	return video, nil
}

func (uc *videoUseCase) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) IncrementView(ctx context.Context, id string) (*entity.Video, error) {
	video, err := uc.videoRepo.IncrementViews(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) List(ctx context.Context, filter entity.VideoFilter) ([]*entity.Video, error) {
	// A text query only searches the public catalog.
	if filter.Query != "" {
		filter.PublishedOnly = true
	}

	videos, err := uc.videoRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list videos: %v", err)
		return nil, Internal("error while fetching videos")
	}
	if videos == nil {
		videos = []*entity.Video{}
	}
	return videos, nil
}

func (uc *videoUseCase) UpdateDetails(ctx context.Context, id, title, description string, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, BadRequest("All fields are required")
	}

	video, err := uc.videoRepo.GetByID(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}

	thumbnailURL, err := uc.upload(thumbnail, video.OwnerID, "thumbnails", "image/jpeg")
	if err != nil {
		uc.logger.Error("Failed to upload thumbnail: %v", err)
		return nil, Internal("error while updating thumbnail")
	}

	updated, err := uc.videoRepo.UpdateDetails(ctx, id, title, description, thumbnailURL)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}
	return updated, nil
}

func (uc *videoUseCase) UpdateFile(ctx context.Context, id string, videoFile *multipart.FileHeader) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}

	videoURL, err := uc.upload(videoFile, video.OwnerID, "videos", "video/mp4")
	if err != nil {
		uc.logger.Error("Failed to upload video file: %v", err)
		return nil, Internal("error while updating video file")
	}

	updated, err := uc.videoRepo.UpdateFile(ctx, id, videoURL)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the video and its dependents: comments, like edges, and
// playlist references.
func (uc *videoUseCase) Delete(ctx context.Context, id string) (*entity.Video, error) {
	video, err := uc.videoRepo.Delete(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}

	if err := uc.commentRepo.DeleteByVideo(ctx, id); err != nil {
		uc.logger.Error("Failed to delete comments for video %s: %v", id, err)
	}
	if err := uc.likeRepo.DeleteByVideo(ctx, id); err != nil {
		uc.logger.Error("Failed to delete likes for video %s: %v", id, err)
	}
	if err := uc.playlistRepo.PullVideoFromAll(ctx, id); err != nil {
		uc.logger.Error("Failed to pull video %s from playlists: %v", id, err)
	}

	return video, nil
}

func (uc *videoUseCase) TogglePublish(ctx context.Context, id string) (*entity.Video, error) {
	video, err := uc.videoRepo.TogglePublished(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Video not found")
		}
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) upload(fh *multipart.FileHeader, ownerID, prefix, defaultContentType string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	key := fmt.Sprintf("%s/%s/%s%s", prefix, ownerID, uuid.New().String(), filepath.Ext(fh.Filename))
	return uc.store.UploadFile(key, src, contentType)
}

func (uc *videoUseCase) uploadFromPath(path string, fh *multipart.FileHeader, ownerID, prefix, defaultContentType string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open staged file: %w", err)
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	key := fmt.Sprintf("%s/%s/%s%s", prefix, ownerID, uuid.New().String(), filepath.Ext(fh.Filename))
	return uc.store.UploadFile(key, f, contentType)
}

func saveTemp(fh *multipart.FileHeader) (string, func(), error) {
	src, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	tmp.Close()

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
