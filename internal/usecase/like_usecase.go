package usecase

import (
	"context"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type LikeUseCase interface {
	ToggleVideoLike(ctx context.Context, videoID, userID string) (bool, *entity.Like, error)
	ToggleCommentLike(ctx context.Context, commentID, userID string) (bool, *entity.Like, error)
	ToggleTweetLike(ctx context.Context, tweetID, userID string) (bool, *entity.Like, error)
	GetLikedVideos(ctx context.Context, userID string) ([]*entity.Like, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	log *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		logger:      log,
	}
}

func (uc *likeUseCase) ToggleVideoLike(ctx context.Context, videoID, userID string) (bool, *entity.Like, error) {
	exists, err := uc.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return false, nil, Internal("something went wrong while checking the video")
	}
	if !exists {
		return false, nil, BadRequest("Video not found")
	}
	return uc.toggle(ctx, entity.LikeTargetVideo, videoID, userID)
}

func (uc *likeUseCase) ToggleCommentLike(ctx context.Context, commentID, userID string) (bool, *entity.Like, error) {
	if _, err := uc.commentRepo.GetByID(ctx, commentID); err != nil {
		if err == persistent.ErrNotFound {
			return false, nil, BadRequest("Comment not found")
		}
		return false, nil, Internal("something went wrong while checking the comment")
	}
	return uc.toggle(ctx, entity.LikeTargetComment, commentID, userID)
}

func (uc *likeUseCase) ToggleTweetLike(ctx context.Context, tweetID, userID string) (bool, *entity.Like, error) {
	exists, err := uc.tweetRepo.Exists(ctx, tweetID)
	if err != nil {
		return false, nil, Internal("something went wrong while checking the tweet")
	}
	if !exists {
		return false, nil, BadRequest("Tweet not found")
	}
	return uc.toggle(ctx, entity.LikeTargetTweet, tweetID, userID)
}

func (uc *likeUseCase) GetLikedVideos(ctx context.Context, userID string) ([]*entity.Like, error) {
	likes, err := uc.likeRepo.GetVideoLikesByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to fetch liked videos for %s: %v", userID, err)
		return nil, Internal("something went wrong while fetching liked videos")
	}
	if likes == nil {
		likes = []*entity.Like{}
	}
	return likes, nil
}

func (uc *likeUseCase) toggle(ctx context.Context, target entity.LikeTarget, targetID, userID string) (bool, *entity.Like, error) {
	liked, like, err := uc.likeRepo.Toggle(ctx, target, targetID, userID)
	if err != nil {
		uc.logger.Error("Failed to toggle %s like: %v", target, err)
		return false, nil, Internal("something went wrong while toggling like")
	}
	return liked, like, nil
}
