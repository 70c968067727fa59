package dragdrop

import "github.com/google/uuid"

// State reports whether a gesture is in progress.
type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
)

// Session is the bookkeeping for one gesture. It is created on drag start and
// discarded on drop or drag end.
type Session struct {
	ID          string
	SourceIndex int
	Item        any
	Dragging    bool
}

func newSession(item any, index int) *Session {
	return &Session{
		ID:          uuid.NewString(),
		SourceIndex: index,
		Item:        item,
		Dragging:    true,
	}
}
