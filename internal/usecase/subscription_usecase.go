package usecase

import (
	"context"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/queue"
)

type SubscriptionUseCase interface {
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, *entity.Subscription, error)
	GetChannelSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error)
	GetSubscribedChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, error)
}

type subscriptionUseCase struct {
	subRepo   persistent.SubscriptionRepository
	userRepo  persistent.UserRepository
	publisher EventPublisher
	logger    *logger.Logger
}

func NewSubscriptionUseCase(
	subRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	publisher EventPublisher,
	log *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subRepo:   subRepo,
		userRepo:  userRepo,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *subscriptionUseCase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, *entity.Subscription, error) {
	exists, err := uc.userRepo.Exists(ctx, channelID)
	if err != nil {
		return false, nil, Internal("something went wrong while checking the channel")
	}
	if !exists {
		return false, nil, BadRequest("Channel not found")
	}

	subscribed, edge, err := uc.subRepo.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		uc.logger.Error("Failed to toggle subscription: %v", err)
		return false, nil, Internal("something went wrong while toggling subscription")
	}

	if subscribed && uc.publisher != nil {
		go func() {
			err := uc.publisher.Publish(queue.UserSubscribedKey, queue.Event{
				Type:     queue.UserSubscribedKey,
				ActorID:  subscriberID,
				TargetID: channelID,
			})
			if err != nil {
				uc.logger.Warn("Failed to publish subscription event: %v", err)
			}
		}()
	}

	return subscribed, edge, nil
}

func (uc *subscriptionUseCase) GetChannelSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error) {
	subs, err := uc.subRepo.GetByChannel(ctx, channelID)
	if err != nil {
		uc.logger.Error("Failed to fetch subscribers for %s: %v", channelID, err)
		return nil, Internal("error while fetching subscribers")
	}
	if subs == nil {
		subs = []*entity.Subscription{}
	}
	return subs, nil
}

func (uc *subscriptionUseCase) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]*entity.Subscription, error) {
	subs, err := uc.subRepo.GetBySubscriber(ctx, subscriberID)
	if err != nil {
		uc.logger.Error("Failed to fetch subscriptions for %s: %v", subscriberID, err)
		return nil, Internal("error while fetching subscribed channels")
	}
	if subs == nil {
		subs = []*entity.Subscription{}
	}
	return subs, nil
}
