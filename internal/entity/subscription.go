package entity

import "time"

// Subscription is a directed follow edge from a subscriber to a channel
// (a user acting as a channel).
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}
