package entity

import "time"

// LikeTarget names the one entity kind a like edge points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like holds exactly one of VideoID/CommentID/TweetID plus the actor.
type Like struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id,omitempty"`
	CommentID string    `json:"comment_id,omitempty"`
	TweetID   string    `json:"tweet_id,omitempty"`
	LikedBy   string    `json:"liked_by"`
	CreatedAt time.Time `json:"created_at"`
}
