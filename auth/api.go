package auth

import (
	"net/http"

	"pulse-cli/types"
)

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// SetRequestSession attaches the active session cookie to an outgoing
// request. Requests made before sign-in go out bare; the server treats them
// as anonymous.
func SetRequestSession(req *http.Request) {
	store := activeStore()
	if store == nil {
		return
	}

	sessionId := store.SessionId()
	if sessionId == "" {
		return
	}

	req.AddCookie(&http.Cookie{Name: "session_id", Value: sessionId})
}
