package lib

import (
	"context"
	"regexp"

	"pulse-cli/auth"
	shared "pulse-cli/shared"
	"pulse-cli/types"
)

const maxBioLength = 500

var avatarUrlPattern = regexp.MustCompile(`^https?://.+`)

// ProfileController owns one profile snapshot plus its posts, loaded once
// per profile id.
type ProfileController struct {
	client  types.ApiClient
	session *auth.SessionStore

	ctx    context.Context
	cancel context.CancelFunc

	profile  *shared.Profile
	loadedId int64
}

func NewProfileController(client types.ApiClient, session *auth.SessionStore) *ProfileController {
	ctx, cancel := context.WithCancel(context.Background())
	return &ProfileController{
		client:  client,
		session: session,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (c *ProfileController) Close() {
	c.cancel()
}

// Load fetches the profile and its posts, cached until the id changes.
func (c *ProfileController) Load(userId int64) (*shared.Profile, *shared.ApiError) {
	if c.profile != nil && c.loadedId == userId {
		return c.profile, nil
	}

	profile, apiErr := c.client.GetProfile(c.ctx, userId)
	if apiErr != nil {
		return nil, apiErr
	}

	c.profile = profile
	c.loadedId = userId

	return profile, nil
}

// ValidateProfile runs the local checks: bio length and avatar URL shape.
// The returned map shape matches server field errors, so both sources
// display identically.
func ValidateProfile(req shared.UpdateProfileRequest) map[string]string {
	fieldErrors := map[string]string{}

	if len([]rune(req.Bio)) > maxBioLength {
		fieldErrors["bio"] = "must be at most 500 characters"
	}

	if req.AvatarUrl != "" && !avatarUrlPattern.MatchString(req.AvatarUrl) {
		fieldErrors["avatar_url"] = "must be a valid http(s) URL"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// UpdateProfile validates locally, then submits. Local failures never reach
// the network. Server field errors come back in the same map shape as local
// ones; anything else is returned as the ApiError.
func (c *ProfileController) UpdateProfile(req shared.UpdateProfileRequest) (*shared.User, map[string]string, *shared.ApiError) {
	if fieldErrors := ValidateProfile(req); fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	user, apiErr := c.client.UpdateProfile(c.ctx, req)
	if apiErr != nil {
		if len(apiErr.Fields) > 0 {
			return nil, apiErr.Fields, nil
		}
		return nil, nil, apiErr
	}

	if c.session != nil {
		c.session.ApplyUserUpdate(user)
	}

	// keep the cached snapshot in step when it's the edited profile
	if c.profile != nil && c.profile.Id == user.Id {
		c.profile.FirstName = user.FirstName
		c.profile.LastName = user.LastName
		c.profile.Bio = user.Bio
		c.profile.AvatarUrl = user.AvatarUrl
	}

	return user, nil, nil
}
