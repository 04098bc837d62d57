package auth

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	shared "pulse-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApiClient struct {
	currentUser         *shared.User
	currentUserErr      *shared.ApiError
	getCurrentUserCalls int

	signInAuth *shared.ClientAuth
	signInErr  *shared.ApiError

	signUpAuth *shared.ClientAuth
	signUpErr  *shared.ApiError

	signOutErr *shared.ApiError
}

func (f *fakeApiClient) SignUp(ctx context.Context, req shared.SignUpRequest) (*shared.ClientAuth, *shared.ApiError) {
	return f.signUpAuth, f.signUpErr
}

func (f *fakeApiClient) SignIn(ctx context.Context, req shared.SignInRequest) (*shared.ClientAuth, *shared.ApiError) {
	return f.signInAuth, f.signInErr
}

func (f *fakeApiClient) SignOut(ctx context.Context) *shared.ApiError {
	return f.signOutErr
}

func (f *fakeApiClient) GetCurrentUser(ctx context.Context) (*shared.User, *shared.ApiError) {
	f.getCurrentUserCalls++
	return f.currentUser, f.currentUserErr
}

func (f *fakeApiClient) ListPosts(ctx context.Context, page, pageSize int) (*shared.Page, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.Post, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) GetPost(ctx context.Context, postId int64) (*shared.Post, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) DeletePost(ctx context.Context, postId int64) *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) ToggleLike(ctx context.Context, postId int64) (*shared.LikeResponse, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) ListComments(ctx context.Context, postId int64) ([]*shared.Comment, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) CreateComment(ctx context.Context, postId int64, req shared.CreateCommentRequest) (*shared.Comment, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) DeleteComment(ctx context.Context, commentId int64) *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) GetProfile(ctx context.Context, userId int64) (*shared.Profile, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func (f *fakeApiClient) UpdateProfile(ctx context.Context, req shared.UpdateProfileRequest) (*shared.User, *shared.ApiError) {
	return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "not implemented"}
}

func TestCheckSessionResolvesOnSuccess(t *testing.T) {
	client := &fakeApiClient{
		currentUser: &shared.User{Id: 1, Username: "ada"},
	}
	store := NewSessionStore(client)

	assert.False(t, store.Resolved(), "session should start unresolved")
	assert.False(t, store.Authenticated(), "no authenticated state before resolution")

	store.CheckSession(context.Background())

	assert.True(t, store.Resolved())
	assert.True(t, store.Authenticated())
	require.NotNil(t, store.Current())
	assert.Equal(t, "ada", store.Current().Username)
}

func TestCheckSessionResolvesOnFailure(t *testing.T) {
	client := &fakeApiClient{
		currentUserErr: &shared.ApiError{Type: shared.ApiErrorTypeInvalidSession, Status: 401, Msg: "invalid session"},
	}
	store := NewSessionStore(client)

	store.CheckSession(context.Background())

	assert.True(t, store.Resolved(), "failure still resolves the session")
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.Current())
}

func TestCheckSessionTransientFailureKeepsPersistedSession(t *testing.T) {
	authPath := filepath.Join(t.TempDir(), "auth.json")
	authBytes, err := json.Marshal(shared.ClientAuth{
		User:      &shared.User{Id: 1, Username: "ada"},
		SessionId: "s3cret",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(authPath, authBytes, 0600))

	client := &fakeApiClient{
		currentUserErr: &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "network down"},
	}
	store, err := NewPersistentSessionStore(client, authPath)
	require.NoError(t, err)

	store.CheckSession(context.Background())

	assert.True(t, store.Resolved())
	assert.False(t, store.Authenticated(), "this run stays anonymous")

	_, statErr := os.Stat(authPath)
	require.NoError(t, statErr, "transient failure must not delete auth.json")
	assert.Equal(t, "s3cret", store.SessionId(), "credentials survive for the next run")
}

func TestCheckSessionRejectedSessionRemovesPersistedSession(t *testing.T) {
	authPath := filepath.Join(t.TempDir(), "auth.json")
	authBytes, err := json.Marshal(shared.ClientAuth{
		User:      &shared.User{Id: 1, Username: "ada"},
		SessionId: "stale",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(authPath, authBytes, 0600))

	client := &fakeApiClient{
		currentUserErr: &shared.ApiError{Type: shared.ApiErrorTypeInvalidSession, Status: 401, Msg: "invalid session"},
	}
	store, err := NewPersistentSessionStore(client, authPath)
	require.NoError(t, err)

	store.CheckSession(context.Background())

	assert.False(t, store.Authenticated())

	_, statErr := os.Stat(authPath)
	assert.True(t, os.IsNotExist(statErr), "a session the server rejected is gone for good")
}

func TestCheckSessionResolvesExactlyOnce(t *testing.T) {
	client := &fakeApiClient{
		currentUser: &shared.User{Id: 1, Username: "ada"},
	}
	store := NewSessionStore(client)

	store.CheckSession(context.Background())
	assert.Equal(t, shared.STATE_AUTHENTICATED, store.State())

	// a second check re-syncs the user but never re-enters resolving
	store.CheckSession(context.Background())
	assert.Equal(t, shared.STATE_AUTHENTICATED, store.State())
	assert.Equal(t, 2, client.getCurrentUserCalls)
}

func TestSignInSuccessReplacesSession(t *testing.T) {
	client := &fakeApiClient{
		currentUserErr: &shared.ApiError{Type: shared.ApiErrorTypeInvalidSession, Status: 401},
		signInAuth: &shared.ClientAuth{
			User:      &shared.User{Id: 7, Username: "grace"},
			SessionId: "abc123",
		},
	}
	store := NewSessionStore(client)
	store.CheckSession(context.Background())

	user, apiErr := store.SignIn(context.Background(), shared.SignInRequest{Email: "grace@example.com", Password: "pw"})

	require.Nil(t, apiErr)
	assert.Equal(t, "grace", user.Username)
	assert.True(t, store.Authenticated())
	assert.Equal(t, "abc123", store.SessionId())
}

func TestSignInFailureLeavesSessionUnchanged(t *testing.T) {
	client := &fakeApiClient{
		currentUserErr: &shared.ApiError{Type: shared.ApiErrorTypeInvalidSession, Status: 401},
		signInErr:      &shared.ApiError{Type: shared.ApiErrorTypeValidation, Status: 400, Msg: "invalid credentials"},
	}
	store := NewSessionStore(client)
	store.CheckSession(context.Background())

	user, apiErr := store.SignIn(context.Background(), shared.SignInRequest{Email: "grace@example.com", Password: "bad"})

	require.NotNil(t, apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Msg)
	assert.Nil(t, user)
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.Current())
}

func TestSignOutFailureLeavesSessionInPlace(t *testing.T) {
	client := &fakeApiClient{
		currentUser: &shared.User{Id: 1, Username: "ada"},
		signOutErr:  &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "network down"},
	}
	store := NewSessionStore(client)
	store.CheckSession(context.Background())

	apiErr := store.SignOut(context.Background())

	require.NotNil(t, apiErr)
	assert.True(t, store.Authenticated(), "failed sign-out keeps the session")
	assert.NotNil(t, store.Current())
}

func TestSignOutSuccessClearsSession(t *testing.T) {
	client := &fakeApiClient{
		currentUser: &shared.User{Id: 1, Username: "ada"},
	}
	store := NewSessionStore(client)
	store.CheckSession(context.Background())

	apiErr := store.SignOut(context.Background())

	require.Nil(t, apiErr)
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.Current())
	assert.True(t, store.Resolved(), "signed-out session stays resolved")
}

func TestRegisterAutoLogin(t *testing.T) {
	client := &fakeApiClient{
		currentUserErr: &shared.ApiError{Type: shared.ApiErrorTypeInvalidSession, Status: 401},
		signUpAuth: &shared.ClientAuth{
			User:      &shared.User{Id: 9, Username: "linus"},
			SessionId: "fresh",
		},
	}
	store := NewSessionStore(client)
	store.CheckSession(context.Background())

	user, apiErr := store.Register(context.Background(), shared.SignUpRequest{
		Email:    "linus@example.com",
		Username: "linus",
		Password: "longenough",
	})

	require.Nil(t, apiErr)
	assert.Equal(t, "linus", user.Username)
	assert.True(t, store.Authenticated(), "register has auto-login semantics")
}

func TestApplyUserUpdateMergesFields(t *testing.T) {
	client := &fakeApiClient{
		currentUser: &shared.User{Id: 1, Username: "ada", Email: "ada@example.com", FirstName: "Ada"},
	}
	store := NewSessionStore(client)
	store.CheckSession(context.Background())

	store.ApplyUserUpdate(&shared.User{
		FirstName: "Augusta",
		LastName:  "Lovelace",
		Bio:       "first programmer",
		AvatarUrl: "https://example.com/ada.png",
	})

	user := store.Current()
	assert.Equal(t, "Augusta", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "first programmer", user.Bio)
	// identity fields survive the merge
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "ada", user.Username)
}

func TestPersistentStoreWritesAndRemovesAuth(t *testing.T) {
	authPath := filepath.Join(t.TempDir(), "auth.json")
	client := &fakeApiClient{
		signInAuth: &shared.ClientAuth{
			User:      &shared.User{Id: 7, Username: "grace"},
			SessionId: "abc123",
		},
	}

	store, err := NewPersistentSessionStore(client, authPath)
	require.NoError(t, err)

	_, apiErr := store.SignIn(context.Background(), shared.SignInRequest{Email: "grace@example.com", Password: "pw"})
	require.Nil(t, apiErr)

	_, statErr := os.Stat(authPath)
	require.NoError(t, statErr, "sign-in should persist auth.json")

	restored, err := NewPersistentSessionStore(client, authPath)
	require.NoError(t, err)
	assert.Equal(t, "abc123", restored.SessionId())

	apiErr = store.SignOut(context.Background())
	require.Nil(t, apiErr)

	_, statErr = os.Stat(authPath)
	assert.True(t, os.IsNotExist(statErr), "sign-out should remove auth.json")
}
