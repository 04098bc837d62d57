package lib

import (
	"context"

	shared "pulse-cli/shared"
	"pulse-cli/types"
)

// PostController owns one post's state: like status, the comment counter,
// and the lazily fetched comment list.
type PostController struct {
	client types.ApiClient

	ctx    context.Context
	cancel context.CancelFunc

	post *shared.Post

	comments       []*shared.Comment
	commentsLoaded bool

	onDeleted types.OnPostDeleted
	onUpdated types.OnPostUpdated
}

func NewPostController(client types.ApiClient, post *shared.Post, onDeleted types.OnPostDeleted, onUpdated types.OnPostUpdated) *PostController {
	ctx, cancel := context.WithCancel(context.Background())
	return &PostController{
		client:    client,
		ctx:       ctx,
		cancel:    cancel,
		post:      post,
		onDeleted: onDeleted,
		onUpdated: onUpdated,
	}
}

func (c *PostController) Close() {
	c.cancel()
}

func (c *PostController) Post() *shared.Post {
	return c.post
}

// ToggleLike flips the like on the server and applies the returned state
// verbatim. The server owns the count — a local increment would drift when
// others like concurrently. With overlapping toggles the last response to
// arrive wins.
func (c *PostController) ToggleLike() *shared.ApiError {
	res, apiErr := c.client.ToggleLike(c.ctx, c.post.Id)
	if apiErr != nil {
		return apiErr
	}

	c.post.IsLiked = res.IsLiked
	c.post.LikesCount = res.LikesCount

	c.notifyUpdated()

	return nil
}

// Delete removes the post server-side, then notifies the owning list. The
// local list is only touched after the server confirms — deletion is
// confirmed, not optimistic. Prompting the user first is the caller's job.
func (c *PostController) Delete() *shared.ApiError {
	apiErr := c.client.DeletePost(c.ctx, c.post.Id)
	if apiErr != nil {
		return apiErr
	}

	if c.onDeleted != nil {
		c.onDeleted(c.post.Id)
	}

	return nil
}

// Comments fetches the comment list on first call and serves the cached set
// afterwards, until InvalidateComments.
func (c *PostController) Comments() ([]*shared.Comment, *shared.ApiError) {
	if c.commentsLoaded {
		return c.comments, nil
	}

	comments, apiErr := c.client.ListComments(c.ctx, c.post.Id)
	if apiErr != nil {
		return nil, apiErr
	}

	c.comments = comments
	c.commentsLoaded = true

	return c.comments, nil
}

func (c *PostController) InvalidateComments() {
	c.comments = nil
	c.commentsLoaded = false
}

// HandleCommentCreated appends to the cached comment list (creation order)
// and bumps the counter.
func (c *PostController) HandleCommentCreated(comment *shared.Comment) {
	if c.commentsLoaded {
		c.comments = append(c.comments, comment)
	}

	c.post.CommentsCount++
	c.notifyUpdated()
}

// HandleCommentDeleted removes the comment from the cached list. The counter
// drops even when the id wasn't cached locally — deletes arriving through
// another view still have to be reflected in the count.
func (c *PostController) HandleCommentDeleted(commentId int64) {
	if c.commentsLoaded {
		var filtered []*shared.Comment
		for _, comment := range c.comments {
			if comment.Id != commentId {
				filtered = append(filtered, comment)
			}
		}
		c.comments = filtered
	}

	c.post.CommentsCount--
	c.notifyUpdated()
}

// notifyUpdated hands the parent a snapshot, not the controller's own copy.
func (c *PostController) notifyUpdated() {
	if c.onUpdated == nil {
		return
	}

	updated := *c.post
	c.onUpdated(&updated)
}
