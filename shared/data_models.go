package shared

import (
	"strings"
	"time"
)

type User struct {
	Id        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
	AvatarUrl string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName prefers the full name, falling back to first name, then username.
func (u *User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// Initials is the avatar-placeholder text shown when a user has no avatar
// image set.
func (u *User) Initials() string {
	if u.FirstName != "" && u.LastName != "" {
		return initial(u.FirstName) + initial(u.LastName)
	}
	if u.FirstName != "" {
		return initial(u.FirstName)
	}
	if u.Username != "" {
		return initial(u.Username)
	}
	return "U"
}

// initial is the upper-cased first rune, not byte, of s.
func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

type Post struct {
	Id            int64     `json:"id"`
	Author        User      `json:"author"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	IsLiked       bool      `json:"is_liked"`
}

type Comment struct {
	Id        int64     `json:"id"`
	Author    User      `json:"author"`
	PostId    int64     `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is a user snapshot together with all of their posts.
type Profile struct {
	User
	Posts []*Post `json:"posts"`
}
