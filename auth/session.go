package auth

import (
	"context"

	shared "pulse-cli/shared"
	"pulse-cli/types"

	"github.com/looplab/fsm"
)

// SessionStore owns the client-side session: who, if anyone, is signed in.
// It is the single writer of that state; everything else reads it through the
// accessors. It's passed down as an explicit dependency rather than reached
// for as ambient global state.
type SessionStore struct {
	client   types.ApiClient
	sm       *fsm.FSM
	auth     *shared.ClientAuth
	authPath string
}

func NewSessionStore(client types.ApiClient) *SessionStore {
	return &SessionStore{
		client: client,
		sm:     shared.NewSessionState(),
	}
}

// NewPersistentSessionStore restores any session persisted at authPath and
// writes session changes back to it.
func NewPersistentSessionStore(client types.ApiClient, authPath string) (*SessionStore, error) {
	store := &SessionStore{
		client:   client,
		sm:       shared.NewSessionState(),
		authPath: authPath,
	}

	clientAuth, err := loadClientAuth(authPath)
	if err != nil {
		return nil, err
	}
	store.auth = clientAuth

	return store, nil
}

// CheckSession resolves the session against the server. It never returns an
// error: an unauthenticated visitor is a normal state, not a failure. The
// resolving state is entered at most once; later calls just re-sync the user.
//
// Persisted credentials are only discarded when the server itself rejects
// them. A transient failure leaves auth.json in place for the next run.
func (s *SessionStore) CheckSession(ctx context.Context) {
	if s.sm.Current() == shared.STATE_UNRESOLVED {
		_ = s.sm.Event(ctx, shared.EVENT_RESOLVE)
	}

	user, apiErr := s.client.GetCurrentUser(ctx)
	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeInvalidSession {
			s.setAnonymous()
		} else {
			s.markAnonymous()
		}
		return
	}

	s.setAuthenticated(&shared.ClientAuth{User: user, SessionId: s.SessionId()})
}

func (s *SessionStore) SignIn(ctx context.Context, req shared.SignInRequest) (*shared.User, *shared.ApiError) {
	clientAuth, apiErr := s.client.SignIn(ctx, req)
	if apiErr != nil {
		return nil, apiErr
	}

	s.setAuthenticated(clientAuth)

	return clientAuth.User, nil
}

// Register creates an account with auto-login semantics: success leaves the
// session authenticated as the new user.
func (s *SessionStore) Register(ctx context.Context, req shared.SignUpRequest) (*shared.User, *shared.ApiError) {
	clientAuth, apiErr := s.client.SignUp(ctx, req)
	if apiErr != nil {
		return nil, apiErr
	}

	s.setAuthenticated(clientAuth)

	return clientAuth.User, nil
}

// SignOut clears the session only once the server confirms. On failure the
// session is left in place, so the server may still consider it live — a
// stale-session risk we accept over wrongly telling the user they're out.
func (s *SessionStore) SignOut(ctx context.Context) *shared.ApiError {
	apiErr := s.client.SignOut(ctx)
	if apiErr != nil {
		return apiErr
	}

	s.setAnonymous()

	return nil
}

// ApplyUserUpdate merges updated profile fields into the held user. Profile
// edits are the one mutation that merges by field instead of replacing the
// whole session.
func (s *SessionStore) ApplyUserUpdate(updated *shared.User) {
	if s.auth == nil || s.auth.User == nil {
		return
	}

	user := s.auth.User
	user.FirstName = updated.FirstName
	user.LastName = updated.LastName
	user.Bio = updated.Bio
	user.AvatarUrl = updated.AvatarUrl

	s.writeAuth()
}

func (s *SessionStore) Current() *shared.User {
	if s.auth == nil {
		return nil
	}
	return s.auth.User
}

func (s *SessionStore) SessionId() string {
	if s.auth == nil {
		return ""
	}
	return s.auth.SessionId
}

func (s *SessionStore) Resolved() bool {
	state := s.sm.Current()
	return state == shared.STATE_AUTHENTICATED || state == shared.STATE_ANONYMOUS
}

func (s *SessionStore) Authenticated() bool {
	return s.sm.Current() == shared.STATE_AUTHENTICATED
}

func (s *SessionStore) State() string {
	return s.sm.Current()
}

// setAuthenticated replaces the entire session atomically — no partial-field
// merge on sign-in, register, or re-check.
func (s *SessionStore) setAuthenticated(clientAuth *shared.ClientAuth) {
	if s.sm.Current() == shared.STATE_UNRESOLVED {
		_ = s.sm.Event(context.Background(), shared.EVENT_RESOLVE)
	}

	s.auth = clientAuth

	if s.sm.Current() != shared.STATE_AUTHENTICATED {
		_ = s.sm.Event(context.Background(), shared.EVENT_AUTHENTICATED)
	}

	s.writeAuth()
}

// setAnonymous ends the session for good: held credentials are dropped and
// auth.json is removed.
func (s *SessionStore) setAnonymous() {
	s.auth = nil
	s.markAnonymous()
	s.removeAuth()
}

// markAnonymous moves the state machine to anonymous without touching the
// held credentials or auth.json, for failures where the server never
// actually rejected the session.
func (s *SessionStore) markAnonymous() {
	if s.sm.Current() == shared.STATE_UNRESOLVED {
		_ = s.sm.Event(context.Background(), shared.EVENT_RESOLVE)
	}

	if s.sm.Current() != shared.STATE_ANONYMOUS {
		_ = s.sm.Event(context.Background(), shared.EVENT_ANONYMOUS)
	}
}
