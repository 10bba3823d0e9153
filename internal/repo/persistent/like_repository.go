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

type LikeRepository interface {
	// Toggle removes the (actor, target) like edge if present, otherwise
	// creates it. Returns whether the edge exists after the call and the
	// edge that was created or deleted.
	Toggle(ctx context.Context, target entity.LikeTarget, targetID, userID string) (bool, *entity.Like, error)
	GetVideoLikesByUser(ctx context.Context, userID string) ([]*entity.Like, error)
	DeleteByVideo(ctx context.Context, videoID string) error
}

type likeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) LikeRepository {
	coll := db.Collection("likes")
	indexes := make([]mongo.IndexModel, 0, 3)
	for _, field := range []string{"video", "comment", "tweet"} {
		indexes = append(indexes, mongo.IndexModel{
			Keys: bson.D{{Key: "liked_by", Value: 1}, {Key: field, Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("liked_by_" + field + "_unique").
				SetPartialFilterExpression(bson.M{field: bson.M{"$exists": true}}),
		})
	}
	_, _ = coll.Indexes().CreateMany(context.Background(), indexes)
	return &likeRepository{coll: coll}
}

func (r *likeRepository) Toggle(ctx context.Context, target entity.LikeTarget, targetID, userID string) (bool, *entity.Like, error) {
	uid := mustObjectID(userID)
	tid := mustObjectID(targetID)
	filter := bson.M{"liked_by": uid, string(target): tid}

	var deleted model.LikeModel
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&deleted)
	if err == nil {
		return false, ToLikeEntity(&deleted), nil
	}
	if err != mongo.ErrNoDocuments {
		return false, nil, err
	}

	doc := &model.LikeModel{
		LikedBy:   uid,
		CreatedAt: time.Now().UTC(),
	}
	switch target {
	case entity.LikeTargetVideo:
		doc.Video = &tid
	case entity.LikeTargetComment:
		doc.Comment = &tid
	case entity.LikeTargetTweet:
		doc.Tweet = &tid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// A concurrent toggle won the insert; the unique index keeps the
		// edge single, so report it as liked.
		if mongo.IsDuplicateKeyError(err) {
			var existing model.LikeModel
			if ferr := r.coll.FindOne(ctx, filter).Decode(&existing); ferr == nil {
				return true, ToLikeEntity(&existing), nil
			}
			return true, nil, nil
		}
		return false, nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return true, ToLikeEntity(doc), nil
}

// GetVideoLikesByUser returns every like edge of the caller that points at
// a video, unpaginated.
func (r *likeRepository) GetVideoLikesByUser(ctx context.Context, userID string) ([]*entity.Like, error) {
	filter := bson.M{"liked_by": mustObjectID(userID), "video": bson.M{"$exists": true}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Like
	for cur.Next(ctx) {
		var doc model.LikeModel
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, ToLikeEntity(&doc))
	}
	return out, cur.Err()
}

func (r *likeRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"video": mustObjectID(videoID)})
	return err
}
