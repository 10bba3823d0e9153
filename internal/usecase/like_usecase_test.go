package usecase

import (
	"context"
	"testing"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLikeUseCaseForTest() (*MockLikeRepository, *MockVideoRepository, *MockCommentRepository, *MockTweetRepository, LikeUseCase) {
	likeRepo := new(MockLikeRepository)
	videoRepo := new(MockVideoRepository)
	commentRepo := new(MockCommentRepository)
	tweetRepo := new(MockTweetRepository)
	uc := NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, logger.New())
	return likeRepo, videoRepo, commentRepo, tweetRepo, uc
}

func TestToggleVideoLike_DoubleToggleRoundTrips(t *testing.T) {
	likeRepo, videoRepo, _, _, uc := newLikeUseCaseForTest()

	videoRepo.On("Exists", mock.Anything, "video-1").Return(true, nil)
	edge := &entity.Like{ID: "like-1", VideoID: "video-1", LikedBy: "user-1"}
	likeRepo.On("Toggle", mock.Anything, entity.LikeTargetVideo, "video-1", "user-1").
		Return(true, edge, nil).Once()
	likeRepo.On("Toggle", mock.Anything, entity.LikeTargetVideo, "video-1", "user-1").
		Return(false, edge, nil).Once()

	liked, _, err := uc.ToggleVideoLike(context.Background(), "video-1", "user-1")
	assert.NoError(t, err)
	assert.True(t, liked)

	liked, _, err = uc.ToggleVideoLike(context.Background(), "video-1", "user-1")
	assert.NoError(t, err)
	assert.False(t, liked)

	likeRepo.AssertExpectations(t)
}

func TestToggleVideoLike_VideoMissing(t *testing.T) {
	likeRepo, videoRepo, _, _, uc := newLikeUseCaseForTest()

	videoRepo.On("Exists", mock.Anything, "missing").Return(false, nil)

	_, _, err := uc.ToggleVideoLike(context.Background(), "missing", "user-1")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Video not found", appErr.Message)
	likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleTweetLike_TweetMissing(t *testing.T) {
	likeRepo, _, _, tweetRepo, uc := newLikeUseCaseForTest()

	tweetRepo.On("Exists", mock.Anything, "missing").Return(false, nil)

	_, _, err := uc.ToggleTweetLike(context.Background(), "missing", "user-1")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Tweet not found", appErr.Message)
	likeRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleCommentLike_Success(t *testing.T) {
	likeRepo, _, commentRepo, _, uc := newLikeUseCaseForTest()

	commentRepo.On("GetByID", mock.Anything, "comment-1").Return(&entity.Comment{ID: "comment-1"}, nil)
	likeRepo.On("Toggle", mock.Anything, entity.LikeTargetComment, "comment-1", "user-1").
		Return(true, &entity.Like{ID: "like-1", CommentID: "comment-1", LikedBy: "user-1"}, nil)

	liked, like, err := uc.ToggleCommentLike(context.Background(), "comment-1", "user-1")

	assert.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, "comment-1", like.CommentID)
	likeRepo.AssertExpectations(t)
}

func TestGetLikedVideos_NilResultBecomesEmptySlice(t *testing.T) {
	likeRepo, _, _, _, uc := newLikeUseCaseForTest()

	likeRepo.On("GetVideoLikesByUser", mock.Anything, "user-1").Return(nil, nil)

	likes, err := uc.GetLikedVideos(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, likes)
	assert.Len(t, likes, 0)
}
