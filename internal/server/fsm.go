package server

// ConnState is one state of the per-connection handshake/lifecycle FSM of
// §4.F: Listening -> PreAuth -> ReadingAuth -> Authenticating -> Running ->
// Draining -> Closed. Listening itself is the transport's accept loop, not a
// per-Client state, so the Client FSM starts at PreAuth.
type ConnState uint8

const (
	StatePreAuth ConnState = iota
	StateReadingAuth
	StateAuthenticating
	StateRunning
	StateDraining
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StatePreAuth:
		return "pre-auth"
	case StateReadingAuth:
		return "reading-auth"
	case StateAuthenticating:
		return "authenticating"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// validTransitions enumerates the FSM's legal edges; CanTransition is used
// by Client.setState as a cheap invariant check rather than trusting every
// caller to only drive the FSM forward.
var validTransitions = map[ConnState][]ConnState{
	StatePreAuth:         {StateReadingAuth, StateClosed},
	StateReadingAuth:     {StateAuthenticating, StateClosed},
	StateAuthenticating:  {StateRunning, StateClosed},
	StateRunning:         {StateDraining, StateClosed},
	StateDraining:        {StateClosed},
	StateClosed:          {},
}

// CanTransition reports whether moving from 'from' to 'to' is a legal FSM
// edge. Self-transitions are never legal; callers that want idempotent
// "ensure closed" behavior should check state first.
func CanTransition(from, to ConnState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
