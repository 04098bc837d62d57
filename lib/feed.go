package lib

import (
	"context"
	"strings"

	shared "pulse-cli/shared"
	"pulse-cli/types"
)

const DefaultPageSize = 20

// FeedController owns the paginated post list. List changes are applied as
// explicit local commands — insert-at-head, remove-by-id, merge-by-id — and
// the list is never refetched to reconcile.
type FeedController struct {
	client types.ApiClient

	ctx    context.Context
	cancel context.CancelFunc

	posts    []*shared.Post
	page     int
	pageSize int
	hasNext  bool

	loading     bool
	loadingMore bool
}

func NewFeedController(client types.ApiClient) *FeedController {
	ctx, cancel := context.WithCancel(context.Background())
	return &FeedController{
		client:   client,
		ctx:      ctx,
		cancel:   cancel,
		pageSize: DefaultPageSize,
	}
}

// Close cancels any in-flight requests so a late response can't touch state
// the controller is done with.
func (c *FeedController) Close() {
	c.cancel()
}

// LoadPage fetches one page of posts. With appendPage the results join the
// tail of the existing list, preserving the order of everything already
// loaded; otherwise the list is replaced. Order within a page is the
// server's and is never re-sorted here. Page numbers are plain increments —
// items created concurrently by other users can duplicate or skip across
// page boundaries, which is accepted.
func (c *FeedController) LoadPage(page int, appendPage bool) *shared.ApiError {
	if appendPage {
		c.loadingMore = true
		defer func() { c.loadingMore = false }()
	} else {
		c.loading = true
		defer func() { c.loading = false }()
	}

	res, apiErr := c.client.ListPosts(c.ctx, page, c.pageSize)
	if apiErr != nil {
		return apiErr
	}

	if appendPage {
		c.posts = append(c.posts, res.Results...)
	} else {
		c.posts = res.Results
	}
	c.page = page
	c.hasNext = res.HasNext()

	return nil
}

// LoadMore fetches the next page onto the tail.
func (c *FeedController) LoadMore() *shared.ApiError {
	return c.LoadPage(c.page+1, true)
}

// CreatePost publishes new content and inserts the created post at the head
// of the list without a refetch. Whitespace-only content is a no-op: no
// request goes out and the list is untouched.
func (c *FeedController) CreatePost(content string) (*shared.Post, *shared.ApiError) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	post, apiErr := c.client.CreatePost(c.ctx, shared.CreatePostRequest{Content: content})
	if apiErr != nil {
		return nil, apiErr
	}

	c.insertAtHead(post)

	return post, nil
}

// HandlePostDeleted and HandlePostUpdated are the callbacks per-post
// controllers report back through. Both mutate in-memory state only.
func (c *FeedController) HandlePostDeleted(postId int64) {
	c.removeById(postId)
}

func (c *FeedController) HandlePostUpdated(post *shared.Post) {
	c.mergeById(post)
}

func (c *FeedController) Posts() []*shared.Post {
	return c.posts
}

func (c *FeedController) HasNext() bool {
	return c.hasNext
}

func (c *FeedController) Page() int {
	return c.page
}

func (c *FeedController) Loading() bool {
	return c.loading || c.loadingMore
}

func (c *FeedController) insertAtHead(post *shared.Post) {
	c.posts = append([]*shared.Post{post}, c.posts...)
}

func (c *FeedController) removeById(postId int64) {
	var filtered []*shared.Post
	for _, post := range c.posts {
		if post.Id != postId {
			filtered = append(filtered, post)
		}
	}
	c.posts = filtered
}

func (c *FeedController) mergeById(post *shared.Post) {
	for i, existing := range c.posts {
		if existing.Id == post.Id {
			c.posts[i] = post
			break
		}
	}
}
