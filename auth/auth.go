package auth

import (
	"context"
	"fmt"
	"os"

	"pulse-cli/term"
)

// MustResolveSession gates every protected command. It resolves the session
// exactly once per process and exits before any protected output when the
// visitor turns out to be anonymous — nothing protected is shown while the
// check is still in flight.
func MustResolveSession() *SessionStore {
	store := mustActiveStore()

	if !store.Resolved() {
		term.StartSpinner("")
		store.CheckSession(context.Background())
		term.StopSpinner()
	}

	if !store.Authenticated() {
		term.OutputSimpleError("You're not signed in")
		fmt.Println()
		term.PrintCmds("", "sign-in", "register")
		os.Exit(1)
	}

	return store
}

// RequireAnonymous is the inverse gate, for sign-in and register.
func RequireAnonymous() *SessionStore {
	store := mustActiveStore()

	if !store.Resolved() {
		term.StartSpinner("")
		store.CheckSession(context.Background())
		term.StopSpinner()
	}

	if store.Authenticated() {
		term.OutputSimpleError("You're already signed in as %s", store.Current().Username)
		fmt.Println()
		term.PrintCmds("", "sign-out")
		os.Exit(1)
	}

	return store
}

func mustActiveStore() *SessionStore {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving session: api client not set")
	}

	store := activeStore()
	if store == nil {
		term.OutputErrorAndExit("error resolving session: session store not set")
	}

	return store
}
