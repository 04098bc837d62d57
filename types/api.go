package types

import (
	"context"

	shared "pulse-cli/shared"
)

type ApiClient interface {
	SignUp(ctx context.Context, req shared.SignUpRequest) (*shared.ClientAuth, *shared.ApiError)
	SignIn(ctx context.Context, req shared.SignInRequest) (*shared.ClientAuth, *shared.ApiError)
	SignOut(ctx context.Context) *shared.ApiError
	GetCurrentUser(ctx context.Context) (*shared.User, *shared.ApiError)

	ListPosts(ctx context.Context, page, pageSize int) (*shared.Page, *shared.ApiError)
	CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError)
	GetPost(ctx context.Context, postId int64) (*shared.Post, *shared.ApiError)
	DeletePost(ctx context.Context, postId int64) *shared.ApiError
	ToggleLike(ctx context.Context, postId int64) (*shared.LikeResponse, *shared.ApiError)

	ListComments(ctx context.Context, postId int64) ([]*shared.Comment, *shared.ApiError)
	CreateComment(ctx context.Context, postId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError)
	DeleteComment(ctx context.Context, commentId int64) *shared.ApiError

	GetProfile(ctx context.Context, userId int64) (*shared.Profile, *shared.ApiError)
	UpdateProfile(ctx context.Context, req shared.UpdateProfileRequest) (*shared.User, *shared.ApiError)
}
