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

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetByVideo(ctx context.Context, videoID string, page, limit int) ([]*entity.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) (*entity.Comment, error)
	DeleteByVideo(ctx context.Context, videoID string) error
}

type commentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	coll := db.Collection("comments")
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("video_created_idx"),
	})
	return &commentRepository{coll: coll}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	now := time.Now().UTC()
	doc := &model.CommentModel{
		Content:   comment.Content,
		Video:     mustObjectID(comment.VideoID),
		Owner:     mustObjectID(comment.OwnerID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translateWriteError(err)
	}

	comment.ID = res.InsertedID.(primitive.ObjectID).Hex()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var doc model.CommentModel
	err := r.coll.FindOne(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&doc), nil
}

// GetByVideo pages through a video's comments in insertion order.
func (r *commentRepository) GetByVideo(ctx context.Context, videoID string, page, limit int) ([]*entity.Comment, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"video": mustObjectID(videoID)}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Comment
	for cur.Next(ctx) {
		var doc model.CommentModel
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, ToCommentEntity(&doc))
	}
	return out, cur.Err()
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) (*entity.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}

	var doc model.CommentModel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": mustObjectID(id)}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&doc), nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) (*entity.Comment, error) {
	var doc model.CommentModel
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&doc), nil
}

func (r *commentRepository) DeleteByVideo(ctx context.Context, videoID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"video": mustObjectID(videoID)})
	return err
}
