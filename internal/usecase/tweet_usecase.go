package usecase

import (
	"context"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
)

type TweetUseCase interface {
	CreateTweet(ctx context.Context, ownerID, content string) (*entity.Tweet, error)
	GetUserTweets(ctx context.Context, ownerID string) ([]*entity.Tweet, error)
	UpdateTweet(ctx context.Context, id, content string) (*entity.Tweet, error)
	DeleteTweet(ctx context.Context, id string) (*entity.Tweet, error)
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	logger    *logger.Logger
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, log *logger.Logger) TweetUseCase {
	return &tweetUseCase{tweetRepo: tweetRepo, logger: log}
}

func (uc *tweetUseCase) CreateTweet(ctx context.Context, ownerID, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, BadRequest("Content required")
	}

	tweet := &entity.Tweet{
		Content: content,
		OwnerID: ownerID,
	}
	if err := uc.tweetRepo.Create(ctx, tweet); err != nil {
		uc.logger.Error("Failed to create tweet: %v", err)
		return nil, Internal("something went wrong while tweeting")
	}
	return tweet, nil
}

func (uc *tweetUseCase) GetUserTweets(ctx context.Context, ownerID string) ([]*entity.Tweet, error) {
	tweets, err := uc.tweetRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Error("Failed to fetch tweets for %s: %v", ownerID, err)
		return nil, Internal("something went wrong while fetching tweets")
	}
	if tweets == nil {
		tweets = []*entity.Tweet{}
	}
	return tweets, nil
}

func (uc *tweetUseCase) UpdateTweet(ctx context.Context, id, content string) (*entity.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, BadRequest("Content required")
	}

	tweet, err := uc.tweetRepo.UpdateContent(ctx, id, content)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Tweet not found")
		}
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) DeleteTweet(ctx context.Context, id string) (*entity.Tweet, error) {
	tweet, err := uc.tweetRepo.Delete(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("Tweet not found")
		}
		return nil, err
	}
	return tweet, nil
}
