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

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	// AddVideo reports false when the video is already in the playlist.
	AddVideo(ctx context.Context, id, videoID string) (bool, error)
	// RemoveVideo reports false when the video is not in the playlist.
	RemoveVideo(ctx context.Context, id, videoID string) (bool, error)
	Update(ctx context.Context, id, name, description string) (*entity.Playlist, error)
	Delete(ctx context.Context, id string) (*entity.Playlist, error)
	PullVideoFromAll(ctx context.Context, videoID string) error
}

type playlistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) PlaylistRepository {
	coll := db.Collection("playlists")
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("owner_name_unique"),
	})
	return &playlistRepository{coll: coll}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	now := time.Now().UTC()
	doc := &model.PlaylistModel{
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       mustObjectID(playlist.OwnerID),
		Videos:      []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translateWriteError(err)
	}

	playlist.ID = res.InsertedID.(primitive.ObjectID).Hex()
	playlist.VideoIDs = []string{}
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	var doc model.PlaylistModel
	err := r.coll.FindOne(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPlaylistEntity(&doc), nil
}

func (r *playlistRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner": mustObjectID(ownerID)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Playlist
	for cur.Next(ctx) {
		var doc model.PlaylistModel
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, ToPlaylistEntity(&doc))
	}
	return out, cur.Err()
}

// AddVideo relies on $addToSet so a concurrent duplicate add cannot slip
// through; a zero modified count means the video was already present.
func (r *playlistRepository) AddVideo(ctx context.Context, id, videoID string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": mustObjectID(id)},
		bson.M{
			"$addToSet": bson.M{"videos": mustObjectID(videoID)},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, videoID string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": mustObjectID(id)},
		bson.M{
			"$pull": bson.M{"videos": mustObjectID(videoID)},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount > 0, nil
}

func (r *playlistRepository) Update(ctx context.Context, id, name, description string) (*entity.Playlist, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{
		"name":        name,
		"description": description,
		"updated_at":  time.Now().UTC(),
	}}

	var doc model.PlaylistModel
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": mustObjectID(id)}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, translateWriteError(err)
	}
	return ToPlaylistEntity(&doc), nil
}

func (r *playlistRepository) Delete(ctx context.Context, id string) (*entity.Playlist, error) {
	var doc model.PlaylistModel
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": mustObjectID(id)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPlaylistEntity(&doc), nil
}

func (r *playlistRepository) PullVideoFromAll(ctx context.Context, videoID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"videos": mustObjectID(videoID)},
		bson.M{"$pull": bson.M{"videos": mustObjectID(videoID)}},
	)
	return err
}
