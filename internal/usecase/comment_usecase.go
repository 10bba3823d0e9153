package usecase

import (
	"context"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type CommentUseCase interface {
	GetVideoComments(ctx context.Context, videoID string, page, limit int) ([]*entity.Comment, error)
	AddComment(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, id, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id string) (*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, videoRepo persistent.VideoRepository, log *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      log,
	}
}

func (uc *commentUseCase) GetVideoComments(ctx context.Context, videoID string, page, limit int) ([]*entity.Comment, error) {
	if err := uc.requireVideo(ctx, videoID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByVideo(ctx, videoID, page, limit)
	if err != nil {
		uc.logger.Error("Failed to fetch comments for video %s: %v", videoID, err)
		return nil, Internal("something went wrong while fetching comments")
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}

func (uc *commentUseCase) AddComment(ctx context.Context, videoID, ownerID, content string) (*entity.Comment, error) {
	if err := uc.requireVideo(ctx, videoID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, BadRequest("Content required")
	}

	comment := &entity.Comment{
		Content: content,
		VideoID: videoID,
		OwnerID: ownerID,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, Internal("something went wrong while adding the comment")
	}
	return comment, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, id, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, BadRequest("Content required")
	}

	comment, err := uc.commentRepo.UpdateContent(ctx, id, content)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, id string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.Delete(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

// requireVideo rejects the request before any write when the parent video
// is missing.
func (uc *commentUseCase) requireVideo(ctx context.Context, videoID string) error {
	exists, err := uc.videoRepo.Exists(ctx, videoID)
	if err != nil {
		uc.logger.Error("Failed to check video %s: %v", videoID, err)
		return Internal("something went wrong while checking the video")
	}
	if !exists {
		return BadRequest("Video not found")
	}
	return nil
}
