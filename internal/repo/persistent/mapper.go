package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:         m.ID.Hex(),
		Username:   m.Username,
		Email:      m.Email,
		Password:   m.Password,
		FullName:   m.FullName,
		Avatar:     m.Avatar,
		CoverImage: m.CoverImage,
		Role:       entity.Role(m.Role),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		OwnerID:     m.Owner.Hex(),
		IsPublished: m.IsPublished,
		Views:       m.Views,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}
	return &entity.Comment{
		ID:        m.ID.Hex(),
		Content:   m.Content,
		VideoID:   m.Video.Hex(),
		OwnerID:   m.Owner.Hex(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}
	return &entity.Tweet{
		ID:        m.ID.Hex(),
		Content:   m.Content,
		OwnerID:   m.Owner.Hex(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	like := &entity.Like{
		ID:        m.ID.Hex(),
		LikedBy:   m.LikedBy.Hex(),
		CreatedAt: m.CreatedAt,
	}
	if m.Video != nil {
		like.VideoID = m.Video.Hex()
	}
	if m.Comment != nil {
		like.CommentID = m.Comment.Hex()
	}
	if m.Tweet != nil {
		like.TweetID = m.Tweet.Hex()
	}
	return like
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}
	videos := make([]string, len(m.Videos))
	for i, id := range m.Videos {
		videos[i] = id.Hex()
	}
	return &entity.Playlist{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.Owner.Hex(),
		VideoIDs:    videos,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}
	return &entity.Subscription{
		ID:           m.ID.Hex(),
		SubscriberID: m.Subscriber.Hex(),
		ChannelID:    m.Channel.Hex(),
		CreatedAt:    m.CreatedAt,
	}
}

// mustObjectID converts an already-validated hex id. Handlers validate id
// shape before any repository call, so a failure here is a programming error.
func mustObjectID(hex string) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(hex)
	return id
}
