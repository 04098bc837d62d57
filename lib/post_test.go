package lib

import (
	"testing"

	shared "pulse-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeAppliesServerStateVerbatim(t *testing.T) {
	client := &stubApiClient{
		toggleLikeFn: func(postId int64) (*shared.LikeResponse, *shared.ApiError) {
			return &shared.LikeResponse{IsLiked: true, LikesCount: 5}, nil
		},
	}
	// local count deliberately out of step with what the server reports
	post := &shared.Post{Id: 1, IsLiked: false, LikesCount: 2}

	var updated *shared.Post
	controller := NewPostController(client, post, nil, func(p *shared.Post) { updated = p })
	defer controller.Close()

	apiErr := controller.ToggleLike()

	require.Nil(t, apiErr)
	assert.True(t, post.IsLiked)
	assert.Equal(t, 5, post.LikesCount, "server count wins over a local increment")
	require.NotNil(t, updated, "parent list is notified")
	assert.Equal(t, 5, updated.LikesCount)
}

func TestToggleLikeFailureLeavesPostUntouched(t *testing.T) {
	client := &stubApiClient{
		toggleLikeFn: func(postId int64) (*shared.LikeResponse, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "server error"}
		},
	}
	post := &shared.Post{Id: 1, IsLiked: false, LikesCount: 2}

	notified := false
	controller := NewPostController(client, post, nil, func(p *shared.Post) { notified = true })
	defer controller.Close()

	apiErr := controller.ToggleLike()

	require.NotNil(t, apiErr)
	assert.False(t, post.IsLiked)
	assert.Equal(t, 2, post.LikesCount)
	assert.False(t, notified)
}

func TestDeleteNotifiesOnlyAfterServerConfirms(t *testing.T) {
	post := &shared.Post{Id: 3}

	t.Run("failure", func(t *testing.T) {
		client := &stubApiClient{
			deletePostFn: func(postId int64) *shared.ApiError {
				return &shared.ApiError{Type: shared.ApiErrorTypeForbidden, Status: 403, Msg: "not yours"}
			},
		}
		deleted := false
		controller := NewPostController(client, post, func(postId int64) { deleted = true }, nil)
		defer controller.Close()

		apiErr := controller.Delete()

		require.NotNil(t, apiErr)
		assert.False(t, deleted, "no local removal before the server confirms")
	})

	t.Run("success", func(t *testing.T) {
		client := &stubApiClient{
			deletePostFn: func(postId int64) *shared.ApiError { return nil },
		}
		var deletedId int64
		controller := NewPostController(client, post, func(postId int64) { deletedId = postId }, nil)
		defer controller.Close()

		apiErr := controller.Delete()

		require.Nil(t, apiErr)
		assert.Equal(t, int64(3), deletedId)
	})
}

func TestCommentsFetchedOnceThenCached(t *testing.T) {
	client := &stubApiClient{
		listCommentsFn: func(postId int64) ([]*shared.Comment, *shared.ApiError) {
			return []*shared.Comment{{Id: 10, PostId: postId}}, nil
		},
	}
	controller := NewPostController(client, &shared.Post{Id: 1}, nil, nil)
	defer controller.Close()

	first, apiErr := controller.Comments()
	require.Nil(t, apiErr)
	require.Len(t, first, 1)

	second, apiErr := controller.Comments()
	require.Nil(t, apiErr)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, client.listCommentsCalls, "second read serves the cache")

	controller.InvalidateComments()
	_, apiErr = controller.Comments()
	require.Nil(t, apiErr)
	assert.Equal(t, 2, client.listCommentsCalls, "invalidation forces a refetch")
}

func TestHandleCommentCreatedAppendsAndBumpsCount(t *testing.T) {
	client := &stubApiClient{
		listCommentsFn: func(postId int64) ([]*shared.Comment, *shared.ApiError) {
			return []*shared.Comment{{Id: 10}}, nil
		},
	}
	post := &shared.Post{Id: 1, CommentsCount: 1}

	var updated *shared.Post
	controller := NewPostController(client, post, nil, func(p *shared.Post) { updated = p })
	defer controller.Close()

	_, apiErr := controller.Comments()
	require.Nil(t, apiErr)

	controller.HandleCommentCreated(&shared.Comment{Id: 11})

	comments, _ := controller.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, int64(11), comments[1].Id, "new comment appends at the tail")
	assert.Equal(t, 2, post.CommentsCount)
	require.NotNil(t, updated)
	assert.Equal(t, 2, updated.CommentsCount)
}

func TestHandleCommentDeletedRemovesExactId(t *testing.T) {
	client := &stubApiClient{
		listCommentsFn: func(postId int64) ([]*shared.Comment, *shared.ApiError) {
			return []*shared.Comment{{Id: 10}, {Id: 11}, {Id: 12}}, nil
		},
	}
	post := &shared.Post{Id: 1, CommentsCount: 3}
	controller := NewPostController(client, post, nil, nil)
	defer controller.Close()

	_, apiErr := controller.Comments()
	require.Nil(t, apiErr)

	controller.HandleCommentDeleted(11)

	comments, _ := controller.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, int64(10), comments[0].Id)
	assert.Equal(t, int64(12), comments[1].Id)
	assert.Equal(t, 2, post.CommentsCount)
}

func TestHandleCommentDeletedDecrementsCountForUncachedId(t *testing.T) {
	client := &stubApiClient{
		listCommentsFn: func(postId int64) ([]*shared.Comment, *shared.ApiError) {
			return []*shared.Comment{{Id: 10}}, nil
		},
	}
	post := &shared.Post{Id: 1, CommentsCount: 3}
	controller := NewPostController(client, post, nil, nil)
	defer controller.Close()

	_, apiErr := controller.Comments()
	require.Nil(t, apiErr)

	// a delete from another view: id not in this cache, count still drops
	controller.HandleCommentDeleted(99)

	comments, _ := controller.Comments()
	assert.Len(t, comments, 1)
	assert.Equal(t, 2, post.CommentsCount)
}

func TestNotifyUpdatedHandsOutSnapshot(t *testing.T) {
	client := &stubApiClient{
		toggleLikeFn: func(postId int64) (*shared.LikeResponse, *shared.ApiError) {
			return &shared.LikeResponse{IsLiked: true, LikesCount: 1}, nil
		},
	}
	post := &shared.Post{Id: 1}

	var snapshot *shared.Post
	controller := NewPostController(client, post, nil, func(p *shared.Post) { snapshot = p })
	defer controller.Close()

	require.Nil(t, controller.ToggleLike())

	require.NotNil(t, snapshot)
	assert.NotSame(t, post, snapshot, "callback receives a copy, not the controller's pointer")

	// later mutation of the controller's post must not leak into the snapshot
	post.LikesCount = 100
	assert.Equal(t, 1, snapshot.LikesCount)
}
