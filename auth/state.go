package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	shared "pulse-cli/shared"
)

var active *SessionStore

// SetActive registers the process-wide store used by the HTTP transport and
// the command guards. Controllers still receive the store explicitly.
func SetActive(store *SessionStore) {
	active = store
}

func activeStore() *SessionStore {
	return active
}

func loadClientAuth(authPath string) (*shared.ClientAuth, error) {
	if authPath == "" {
		return nil, nil
	}

	bytes, err := os.ReadFile(authPath)
	if err != nil {
		if os.IsNotExist(err) {
			// no persisted session
			return nil, nil
		}
		return nil, fmt.Errorf("error reading auth.json: %v", err)
	}

	var clientAuth shared.ClientAuth
	err = json.Unmarshal(bytes, &clientAuth)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	return &clientAuth, nil
}

func (s *SessionStore) writeAuth() {
	if s.authPath == "" || s.auth == nil {
		return
	}

	bytes, err := json.Marshal(s.auth)
	if err != nil {
		log.Printf("error marshalling auth: %v\n", err)
		return
	}

	err = os.WriteFile(s.authPath, bytes, 0600)
	if err != nil {
		log.Printf("error writing auth: %v\n", err)
	}
}

func (s *SessionStore) removeAuth() {
	if s.authPath == "" {
		return
	}

	err := os.Remove(s.authPath)
	if err != nil && !os.IsNotExist(err) {
		log.Printf("error removing auth: %v\n", err)
	}
}
