package persistent

import (
	"context"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubscriptionRepository interface {
	// Toggle removes the (subscriber, channel) edge if present, otherwise
	// creates it. Returns whether the edge exists after the call and the
	// edge that was created or deleted.
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, *entity.Subscription, error)
	GetByChannel(ctx context.Context, channelID string) ([]*entity.Subscription, error)
	GetBySubscriber(ctx context.Context, subscriberID string) ([]*entity.Subscription, error)
}

type subscriptionRepository struct {
	coll *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	coll := db.Collection("subscriptions")
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("subscriber_channel_unique"),
	})
	return &subscriptionRepository{coll: coll}
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (bool, *entity.Subscription, error) {
	filter := bson.M{
		"subscriber": mustObjectID(subscriberID),
		"channel":    mustObjectID(channelID),
	}

	var deleted model.SubscriptionModel
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&deleted)
	if err == nil {
		return false, ToSubscriptionEntity(&deleted), nil
	}
	if err != mongo.ErrNoDocuments {
		return false, nil, err
	}

	doc := &model.SubscriptionModel{
		Subscriber: mustObjectID(subscriberID),
		Channel:    mustObjectID(channelID),
		CreatedAt:  time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			var existing model.SubscriptionModel
			if ferr := r.coll.FindOne(ctx, filter).Decode(&existing); ferr == nil {
				return true, ToSubscriptionEntity(&existing), nil
			}
			return true, nil, nil
		}
		return false, nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return true, ToSubscriptionEntity(doc), nil
}

func (r *subscriptionRepository) GetByChannel(ctx context.Context, channelID string) ([]*entity.Subscription, error) {
	return r.find(ctx, bson.M{"channel": mustObjectID(channelID)})
}

func (r *subscriptionRepository) GetBySubscriber(ctx context.Context, subscriberID string) ([]*entity.Subscription, error) {
	return r.find(ctx, bson.M{"subscriber": mustObjectID(subscriberID)})
}

func (r *subscriptionRepository) find(ctx context.Context, filter bson.M) ([]*entity.Subscription, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Subscription
	for cur.Next(ctx) {
		var doc model.SubscriptionModel
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, ToSubscriptionEntity(&doc))
	}
	return out, cur.Err()
}
