package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideoModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	VideoFile   string             `bson:"video_file"`
	Thumbnail   string             `bson:"thumbnail"`
	Duration    float64            `bson:"duration"`
	Owner       primitive.ObjectID `bson:"owner"`
	IsPublished bool               `bson:"is_published"`
	Views       int                `bson:"views"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}
