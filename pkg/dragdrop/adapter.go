package dragdrop

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Adapter normalises drag events into the configured callbacks.
type Adapter struct {
	onDragStart func(item any, index int)
	onDragOver  func()
	onDrop      func(source, target int)
	onDragEnd   func()

	activeClass    string
	transferFormat string
	log            *logrus.Entry

	session *Session
}

// New constructs an Adapter. Every callback is optional.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		activeClass:    defaultActiveClass,
		transferFormat: defaultTransferFormat,
		log:            discardLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// HandleDragStart opens a session for the element at index, mirrors the index
// into the transfer channel and marks the element active. A negative index
// closes any stale session and is otherwise ignored.
func (a *Adapter) HandleDragStart(ev Event, item any, index int) {
	if a == nil {
		return
	}
	if index < 0 {
		a.session = nil
		a.log.WithField("source", index).Debug("drag start ignored: negative index")
		return
	}
	a.session = newSession(item, index)

	if ev != nil {
		if transfer := ev.Transfer(); transfer != nil {
			transfer.SetData(a.transferFormat, strconv.Itoa(index))
		}
		if target := ev.Target(); target != nil {
			target.Add(a.activeClass)
		}
	}

	a.log.WithField("session", a.session.ID).WithField("source", index).Debug("drag started")

	if a.onDragStart != nil {
		a.onDragStart(item, index)
	}
}

// HandleDragOver allows dropping on the hovered element and declares a move.
func (a *Adapter) HandleDragOver(ev Event) {
	if a == nil {
		return
	}
	if ev != nil {
		ev.PreventDefault()
		ev.SetDropEffect(DropEffectMove)
	}
	if a.onDragOver != nil {
		a.onDragOver()
	}
}

// HandleDrop resolves the source index and fires the drop callback. Drops
// whose source cannot be resolved are ignored.
func (a *Adapter) HandleDrop(ev Event, target int) {
	if a == nil {
		return
	}
	if ev != nil {
		ev.PreventDefault()
	}

	source, ok := a.sourceIndex(ev)
	a.session = nil
	if !ok {
		a.log.WithField("target", target).Debug("drop ignored: no source index")
		return
	}

	a.log.WithField("source", source).WithField("target", target).Debug("dropped")

	if a.onDrop != nil {
		a.onDrop(source, target)
	}
}

// HandleDragEnd clears the active marker and closes the session. Hosts fire it
// after a drop and when a gesture is abandoned.
func (a *Adapter) HandleDragEnd(ev Event) {
	if a == nil {
		return
	}
	if ev != nil {
		if target := ev.Target(); target != nil {
			target.Remove(a.activeClass)
		}
	}
	a.session = nil
	if a.onDragEnd != nil {
		a.onDragEnd()
	}
}

// Session returns a snapshot of the active session.
func (a *Adapter) Session() (Session, bool) {
	if a == nil || a.session == nil {
		return Session{}, false
	}
	return *a.session, true
}

// State reports whether a gesture is in progress.
func (a *Adapter) State() State {
	if a == nil || a.session == nil {
		return StateIdle
	}
	return StateDragging
}

func (a *Adapter) sourceIndex(ev Event) (int, bool) {
	if a.session != nil {
		return a.session.SourceIndex, a.session.SourceIndex >= 0
	}
	if ev == nil {
		return 0, false
	}
	transfer := ev.Transfer()
	if transfer == nil {
		return 0, false
	}
	return parseIndex(transfer.GetData(a.transferFormat))
}

func parseIndex(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
