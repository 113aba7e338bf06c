package toast

import (
	"time"

	"github.com/vango-dev/toastify/pkg/vdom"
)

const (
	// CSSNamespace prefixes every class name emitted by the package.
	CSSNamespace = "Toastify"

	// DefaultAutoClose is the default auto-close delay.
	DefaultAutoClose = 5000 * time.Millisecond

	// DefaultDraggablePercent is the share of the toast width that must be
	// dragged before the toast is dismissed.
	DefaultDraggablePercent = 80

	// DefaultRole is the role attribute of a toast body.
	DefaultRole = "alert"
)

// Options configures a container and the defaults of every toast shown in it.
type Options struct {
	// ContainerID sets the id of the root element and scopes toasts to it.
	ContainerID string

	// ClassName overrides the position wrapper class. Nil uses the default.
	ClassName ClassName

	// Style is the base style of every position wrapper.
	Style vdom.Style

	// RTL marks the container as right-to-left. It affects class names only.
	RTL bool

	// NewestOnTop renders the most recent toast first within a position.
	NewestOnTop bool

	// Limit caps the number of visible toasts; extra toasts wait in a queue.
	// Zero means unlimited.
	Limit int

	Position           Position
	Transition         Transition
	AutoClose          time.Duration
	CloseButton        CloseButtonFunc
	HideProgressBar    bool
	PauseOnHover       bool
	PauseOnFocusLoss   bool
	CloseOnClick       bool
	Draggable          bool
	DraggablePercent   int
	DraggableDirection Direction
	Role               string
	Theme              Theme
}

// DefaultOptions returns the documented container defaults.
func DefaultOptions() Options {
	return Options{
		Position:           TopRight,
		Transition:         Bounce,
		AutoClose:          DefaultAutoClose,
		CloseButton:        CloseButton,
		PauseOnHover:       true,
		PauseOnFocusLoss:   true,
		CloseOnClick:       true,
		Draggable:          true,
		DraggablePercent:   DefaultDraggablePercent,
		DraggableDirection: DirectionX,
		Role:               DefaultRole,
		Theme:              ThemeLight,
	}
}

// ToastProps returns the per-toast defaults derived from o.
func (o Options) ToastProps() Props {
	return Props{
		ContainerID:        o.ContainerID,
		Position:           o.Position,
		Type:               TypeDefault,
		Theme:              o.Theme,
		AutoClose:          o.AutoClose,
		HideProgressBar:    o.HideProgressBar,
		CloseButton:        o.CloseButton,
		Transition:         o.Transition,
		PauseOnHover:       o.PauseOnHover,
		PauseOnFocusLoss:   o.PauseOnFocusLoss,
		CloseOnClick:       o.CloseOnClick,
		Draggable:          o.Draggable,
		DraggablePercent:   o.DraggablePercent,
		DraggableDirection: o.DraggableDirection,
		Role:               o.Role,
		RTL:                o.RTL,
	}
}
