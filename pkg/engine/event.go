package engine

import "github.com/vango-dev/toastify/pkg/toast"

// EventKind identifies a state change.
type EventKind string

const (
	EventAdded     EventKind = "added"
	EventQueued    EventKind = "queued"
	EventUpdated   EventKind = "updated"
	EventDismissed EventKind = "dismissed"
	EventRemoved   EventKind = "removed"
	EventPaused    EventKind = "paused"
	EventResumed   EventKind = "resumed"

	// EventAction reports a click on an action control of a toast. It
	// does not change the engine state.
	EventAction EventKind = "action"
)

// Event describes one change to the engine state.
type Event struct {
	Kind        EventKind
	ToastID     toast.ID
	Position    toast.Position
	ContainerID string

	// Action is the value of the clicked control, set for EventAction.
	Action string
}

type listener struct {
	id int
	fn func(Event)
}
