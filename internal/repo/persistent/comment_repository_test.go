package persistent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCommentGetByVideo_AppliesSkipAndLimit(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("page two of five", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewCommentRepository(mt.DB)
		mt.ClearEvents()

		videoID := primitive.NewObjectID()
		owner := primitive.NewObjectID()
		commentDoc := func(content string) bson.D {
			return bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "content", Value: content},
				{Key: "video", Value: videoID},
				{Key: "owner", Value: owner},
			}
		}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".comments", mtest.FirstBatch,
			commentDoc("sixth"), commentDoc("seventh")))

		comments, err := repo.GetByVideo(context.Background(), videoID.Hex(), 2, 5)
		require.NoError(mt, err)
		require.Len(mt, comments, 2)
		assert.Equal(mt, "sixth", comments[0].Content)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)

		skip, ok := evt.Command.Lookup("skip").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(5), skip)

		limit, ok := evt.Command.Lookup("limit").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(5), limit)
	})
}

func TestCommentGetByVideo_NormalizesBadPaging(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("zero page and limit fall back to defaults", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewCommentRepository(mt.DB)
		mt.ClearEvents()

		videoID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".comments", mtest.FirstBatch))

		comments, err := repo.GetByVideo(context.Background(), videoID.Hex(), 0, -3)
		require.NoError(mt, err)
		assert.Empty(mt, comments)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)

		skip, ok := evt.Command.Lookup("skip").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(0), skip)

		limit, ok := evt.Command.Lookup("limit").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(10), limit)
	})
}
