package shared

// ClientAuth is the persisted session: the signed-in user plus the
// session cookie value the server issued for it.
type ClientAuth struct {
	User      *User  `json:"user"`
	SessionId string `json:"session_id"`
}
