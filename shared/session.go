package shared

import "github.com/looplab/fsm"

const EVENT_RESOLVE = "resolve"
const EVENT_AUTHENTICATED = "authenticated"
const EVENT_ANONYMOUS = "anonymous"

const STATE_UNRESOLVED = "unresolved"
const STATE_RESOLVING = "resolving"
const STATE_AUTHENTICATED = "authenticated"
const STATE_ANONYMOUS = "anonymous"

// NewSessionState models the session lifecycle. The resolving state is
// entered exactly once, at startup; sign-in and sign-out afterwards toggle
// between the two resolved states without re-entering it.
func NewSessionState() *fsm.FSM {
	sm := fsm.NewFSM(
		STATE_UNRESOLVED,
		fsm.Events{
			{Name: EVENT_RESOLVE, Src: []string{STATE_UNRESOLVED}, Dst: STATE_RESOLVING},
			{Name: EVENT_AUTHENTICATED, Src: []string{STATE_RESOLVING, STATE_ANONYMOUS}, Dst: STATE_AUTHENTICATED},
			{Name: EVENT_ANONYMOUS, Src: []string{STATE_RESOLVING, STATE_AUTHENTICATED}, Dst: STATE_ANONYMOUS},
		},
		fsm.Callbacks{},
	)

	return sm
}
