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

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entity.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id string) (*entity.Tweet, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type tweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) TweetRepository {
	coll := db.Collection("tweets")
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("owner_created_idx"),
	})
	return &tweetRepository{coll: coll}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	now := time.Now().UTC()
	doc := &model.TweetModel{
		Content:   tweet.Content,
		Owner:     mustObjectID(tweet.OwnerID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translateWriteError(err)
	}

	tweet.ID = res.InsertedID.(primitive.ObjectID).Hex()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	var doc model.TweetModel
	err := r.coll.FindOne(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToTweetEntity(&doc), nil
}

// GetByOwner returns the owner's full tweet history; tweets are short and
// per-user volumes are small, so this list is unpaginated.
func (r *tweetRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entity.Tweet, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner": mustObjectID(ownerID)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Tweet
	for cur.Next(ctx) {
		var doc model.TweetModel
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, ToTweetEntity(&doc))
	}
	return out, cur.Err()
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Tweet, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}

	var doc model.TweetModel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": mustObjectID(id)}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToTweetEntity(&doc), nil
}

func (r *tweetRepository) Delete(ctx context.Context, id string) (*entity.Tweet, error) {
	var doc model.TweetModel
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToTweetEntity(&doc), nil
}

func (r *tweetRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": mustObjectID(id)})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
