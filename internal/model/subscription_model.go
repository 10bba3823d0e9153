package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `bson:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel"`
	CreatedAt  time.Time          `bson:"created_at"`
}
