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

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	List(ctx context.Context, filter entity.VideoFilter) ([]*entity.Video, error)
	UpdateDetails(ctx context.Context, id, title, description, thumbnailURL string) (*entity.Video, error)
	UpdateFile(ctx context.Context, id, videoURL string) (*entity.Video, error)
	Delete(ctx context.Context, id string) (*entity.Video, error)
	TogglePublished(ctx context.Context, id string) (*entity.Video, error)
	IncrementViews(ctx context.Context, id string) (*entity.Video, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type videoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) VideoRepository {
	coll := db.Collection("videos")
	_, _ = coll.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("owner_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title_idx"),
		},
	})
	return &videoRepository{coll: coll}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	now := time.Now().UTC()
	doc := &model.VideoModel{
		Title:       video.Title,
		Description: video.Description,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Duration:    video.Duration,
		Owner:       mustObjectID(video.OwnerID),
		IsPublished: video.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translateWriteError(err)
	}

	video.ID = res.InsertedID.(primitive.ObjectID).Hex()
	video.CreatedAt = now
	video.UpdatedAt = now
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	var doc model.VideoModel
	err := r.coll.FindOne(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&doc), nil
}

func (r *videoRepository) List(ctx context.Context, filter entity.VideoFilter) ([]*entity.Video, error) {
	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner"] = mustObjectID(filter.OwnerID)
	}
	if filter.Query != "" {
		query["title"] = bson.M{"$regex": primitive.Regex{Pattern: filter.Query, Options: "i"}}
	}
	if filter.PublishedOnly {
		query["is_published"] = true
	}

	opts := options.Find()
	if filter.SortBy != "" {
		direction := 1
		if filter.SortDesc {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: filter.SortBy, Value: direction}})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	opts.SetSkip(int64((page - 1) * limit))
	opts.SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Video
	for cur.Next(ctx) {
		var doc model.VideoModel
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, ToVideoEntity(&doc))
	}
	return out, cur.Err()
}

func (r *videoRepository) UpdateDetails(ctx context.Context, id, title, description, thumbnailURL string) (*entity.Video, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"thumbnail":   thumbnailURL,
		"updated_at":  time.Now().UTC(),
	}})
}

func (r *videoRepository) UpdateFile(ctx context.Context, id, videoURL string) (*entity.Video, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{
		"video_file": videoURL,
		"updated_at": time.Now().UTC(),
	}})
}

func (r *videoRepository) Delete(ctx context.Context, id string) (*entity.Video, error) {
	var doc model.VideoModel
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&doc), nil
}

// TogglePublished negates the publication flag in a single pipeline update,
// so concurrent toggles cannot lose writes.
func (r *videoRepository) TogglePublished(ctx context.Context, id string) (*entity.Video, error) {
	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"is_published": bson.M{"$not": "$is_published"},
			"updated_at":   time.Now().UTC(),
		}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc model.VideoModel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": mustObjectID(id)}, pipeline, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&doc), nil
}

// IncrementViews bumps the view counter without touching updated_at, so a
// playback never looks like an edit.
func (r *videoRepository) IncrementViews(ctx context.Context, id string) (*entity.Video, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
}

func (r *videoRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": mustObjectID(id)})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *videoRepository) findOneAndUpdate(ctx context.Context, id string, update interface{}) (*entity.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc model.VideoModel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": mustObjectID(id)}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&doc), nil
}
