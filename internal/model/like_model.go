package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeModel keeps exactly one of Video/Comment/Tweet set. The partial
// unique indexes on (liked_by, target) make the toggle race-free.
type LikeModel struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Video     *primitive.ObjectID `bson:"video,omitempty"`
	Comment   *primitive.ObjectID `bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `bson:"tweet,omitempty"`
	LikedBy   primitive.ObjectID  `bson:"liked_by"`
	CreatedAt time.Time           `bson:"created_at"`
}
