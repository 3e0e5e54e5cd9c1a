package lifecycle

// State is a notification lifecycle state. A notification is created unread,
// may transition to read exactly once, and ends archived or deleted.
type State string

const (
	StateUnread   State = "unread"
	StateRead     State = "read"
	StateArchived State = "archived" // reserved; no operation exposes it yet
	StateDeleted  State = "deleted"
)

// transitions is the closed table of legal state changes. There is no
// reverse path: read never returns to unread, and deleted is terminal.
var transitions = map[State][]State{
	StateUnread: {StateRead, StateDeleted},
	StateRead:   {StateArchived, StateDeleted},
}

// CanTransition reports whether moving from one state to another is legal.
// Self-transitions are allowed so idempotent operations stay no-ops instead
// of errors.
func CanTransition(from, to State) bool {
	if from == to {
		return from != StateDeleted
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
