package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Subscribe to or unsubscribe from a channel
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /subscriptions/channel/{channelId} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	channelID, ok := objectIDParam(c, "channelId")
	if !ok {
		return
	}

	subscriberID := c.GetString("user_id")
	subscribed, edge, err := h.subscriptionUseCase.ToggleSubscription(c.Request.Context(), subscriberID, channelID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"subscribed": subscribed, "subscription": edge}, "Subscription toggled successfully")
}

// GetChannelSubscribers godoc
// @Summary      List subscribers of a channel
// @Tags         subscriptions
// @Produce      json
// @Param        channelId path string true "Channel (user) ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /subscriptions/channel/{channelId} [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	channelID, ok := objectIDParam(c, "channelId")
	if !ok {
		return
	}

	subs, err := h.subscriptionUseCase.GetChannelSubscribers(c.Request.Context(), channelID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, subs, "Subscribers fetched successfully")
}

// GetSubscribedChannels godoc
// @Summary      List channels a user is subscribed to
// @Tags         subscriptions
// @Produce      json
// @Param        subscriberId path string true "Subscriber (user) ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /subscriptions/user/{subscriberId} [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	subscriberID, ok := objectIDParam(c, "subscriberId")
	if !ok {
		return
	}

	subs, err := h.subscriptionUseCase.GetSubscribedChannels(c.Request.Context(), subscriberID)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, subs, "Subscribed channels fetched successfully")
}
