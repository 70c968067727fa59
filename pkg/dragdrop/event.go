package dragdrop

// DropEffectMove is the drop effect declared while hovering a drop target.
const DropEffectMove = "move"

// Event is the subset of a native drag event the adapter needs.
type Event interface {
	PreventDefault()
	SetDropEffect(effect string)
	// Transfer returns the drag-transfer channel, or nil when the host has none.
	Transfer() Transfer
	// Target returns the class list of the element the event fired on, or nil.
	Target() ClassList
}

// Transfer is a key/value channel that survives across elements for the
// duration of one gesture.
type Transfer interface {
	SetData(format, value string)
	GetData(format string) string
}

// ClassList mutates the CSS classes of an element.
type ClassList interface {
	Add(class string)
	Remove(class string)
}
