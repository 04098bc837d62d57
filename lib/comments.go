package lib

import (
	"context"
	"strings"

	shared "pulse-cli/shared"
	"pulse-cli/types"
)

// CommentController owns the comment sequence for one post. Append order is
// creation order; failures leave the sequence untouched.
type CommentController struct {
	client types.ApiClient

	ctx    context.Context
	cancel context.CancelFunc

	postId   int64
	comments []*shared.Comment

	onCreated types.OnCommentCreated
	onDeleted types.OnCommentDeleted
}

func NewCommentController(client types.ApiClient, postId int64, onCreated types.OnCommentCreated, onDeleted types.OnCommentDeleted) *CommentController {
	ctx, cancel := context.WithCancel(context.Background())
	return &CommentController{
		client:    client,
		ctx:       ctx,
		cancel:    cancel,
		postId:    postId,
		onCreated: onCreated,
		onDeleted: onDeleted,
	}
}

func (c *CommentController) Close() {
	c.cancel()
}

func (c *CommentController) Load() *shared.ApiError {
	comments, apiErr := c.client.ListComments(c.ctx, c.postId)
	if apiErr != nil {
		return apiErr
	}

	c.comments = comments

	return nil
}

// Create posts a comment and appends it to the in-memory sequence.
// Whitespace-only content is a no-op: nothing goes out and nothing changes.
func (c *CommentController) Create(content string) (*shared.Comment, *shared.ApiError) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	comment, apiErr := c.client.CreateComment(c.ctx, c.postId, shared.CreateCommentRequest{Content: content})
	if apiErr != nil {
		return nil, apiErr
	}

	c.comments = append(c.comments, comment)

	if c.onCreated != nil {
		c.onCreated(comment)
	}

	return comment, nil
}

// Delete removes the comment after server confirmation. Prompting the user
// first is the caller's job.
func (c *CommentController) Delete(commentId int64) *shared.ApiError {
	apiErr := c.client.DeleteComment(c.ctx, commentId)
	if apiErr != nil {
		return apiErr
	}

	var filtered []*shared.Comment
	for _, comment := range c.comments {
		if comment.Id != commentId {
			filtered = append(filtered, comment)
		}
	}
	c.comments = filtered

	if c.onDeleted != nil {
		c.onDeleted(commentId)
	}

	return nil
}

func (c *CommentController) Comments() []*shared.Comment {
	return c.comments
}
