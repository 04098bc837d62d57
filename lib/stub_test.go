package lib

import (
	"context"

	shared "pulse-cli/shared"
)

// stubApiClient records call counts and delegates to per-method funcs. A
// method without a func set fails the call, so tests notice unexpected
// network traffic.
type stubApiClient struct {
	listPostsFn    func(page, pageSize int) (*shared.Page, *shared.ApiError)
	listPostsCalls int

	createPostFn    func(req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	createPostCalls int

	deletePostFn    func(postId int64) *shared.ApiError
	deletePostCalls int

	toggleLikeFn    func(postId int64) (*shared.LikeResponse, *shared.ApiError)
	toggleLikeCalls int

	listCommentsFn    func(postId int64) ([]*shared.Comment, *shared.ApiError)
	listCommentsCalls int

	createCommentFn    func(postId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)
	createCommentCalls int

	deleteCommentFn    func(commentId int64) *shared.ApiError
	deleteCommentCalls int

	getProfileFn    func(userId int64) (*shared.Profile, *shared.ApiError)
	getProfileCalls int

	updateProfileFn    func(req shared.UpdateProfileRequest) (*shared.User, *shared.ApiError)
	updateProfileCalls int
}

func unexpectedCall(method string) *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "unexpected call: " + method}
}

func (s *stubApiClient) SignUp(ctx context.Context, req shared.SignUpRequest) (*shared.ClientAuth, *shared.ApiError) {
	return nil, unexpectedCall("SignUp")
}

func (s *stubApiClient) SignIn(ctx context.Context, req shared.SignInRequest) (*shared.ClientAuth, *shared.ApiError) {
	return nil, unexpectedCall("SignIn")
}

func (s *stubApiClient) SignOut(ctx context.Context) *shared.ApiError {
	return unexpectedCall("SignOut")
}

func (s *stubApiClient) GetCurrentUser(ctx context.Context) (*shared.User, *shared.ApiError) {
	return nil, unexpectedCall("GetCurrentUser")
}

func (s *stubApiClient) ListPosts(ctx context.Context, page, pageSize int) (*shared.Page, *shared.ApiError) {
	s.listPostsCalls++
	if s.listPostsFn == nil {
		return nil, unexpectedCall("ListPosts")
	}
	return s.listPostsFn(page, pageSize)
}

func (s *stubApiClient) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	s.createPostCalls++
	if s.createPostFn == nil {
		return nil, unexpectedCall("CreatePost")
	}
	return s.createPostFn(req)
}

func (s *stubApiClient) GetPost(ctx context.Context, postId int64) (*shared.Post, *shared.ApiError) {
	return nil, unexpectedCall("GetPost")
}

func (s *stubApiClient) DeletePost(ctx context.Context, postId int64) *shared.ApiError {
	s.deletePostCalls++
	if s.deletePostFn == nil {
		return unexpectedCall("DeletePost")
	}
	return s.deletePostFn(postId)
}

func (s *stubApiClient) ToggleLike(ctx context.Context, postId int64) (*shared.LikeResponse, *shared.ApiError) {
	s.toggleLikeCalls++
	if s.toggleLikeFn == nil {
		return nil, unexpectedCall("ToggleLike")
	}
	return s.toggleLikeFn(postId)
}

func (s *stubApiClient) ListComments(ctx context.Context, postId int64) ([]*shared.Comment, *shared.ApiError) {
	s.listCommentsCalls++
	if s.listCommentsFn == nil {
		return nil, unexpectedCall("ListComments")
	}
	return s.listCommentsFn(postId)
}

func (s *stubApiClient) CreateComment(ctx context.Context, postId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	s.createCommentCalls++
	if s.createCommentFn == nil {
		return nil, unexpectedCall("CreateComment")
	}
	return s.createCommentFn(postId, req)
}

func (s *stubApiClient) DeleteComment(ctx context.Context, commentId int64) *shared.ApiError {
	s.deleteCommentCalls++
	if s.deleteCommentFn == nil {
		return unexpectedCall("DeleteComment")
	}
	return s.deleteCommentFn(commentId)
}

func (s *stubApiClient) GetProfile(ctx context.Context, userId int64) (*shared.Profile, *shared.ApiError) {
	s.getProfileCalls++
	if s.getProfileFn == nil {
		return nil, unexpectedCall("GetProfile")
	}
	return s.getProfileFn(userId)
}

func (s *stubApiClient) UpdateProfile(ctx context.Context, req shared.UpdateProfileRequest) (*shared.User, *shared.ApiError) {
	s.updateProfileCalls++
	if s.updateProfileFn == nil {
		return nil, unexpectedCall("UpdateProfile")
	}
	return s.updateProfileFn(req)
}

func makePosts(startId int64, n int) []*shared.Post {
	posts := make([]*shared.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, &shared.Post{Id: startId + int64(i)})
	}
	return posts
}

func strPtr(s string) *string {
	return &s
}
