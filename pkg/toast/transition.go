package toast

import "time"

// Transition describes the enter and exit animation classes of a toast.
type Transition struct {
	Name  string
	Enter string
	Exit  string

	// AppendPosition suffixes the classes with --<position>, for
	// animations that depend on the screen side.
	AppendPosition bool

	// Collapse shrinks the toast height after the exit animation.
	Collapse         bool
	CollapseDuration time.Duration
}

const defaultCollapseDuration = 300 * time.Millisecond

var (
	Bounce = cssTransition("bounce", true)
	Slide  = cssTransition("slide", true)
	Zoom   = cssTransition("zoom", false)
	Flip   = cssTransition("flip", false)
)

func cssTransition(name string, appendPosition bool) Transition {
	prefix := CSSNamespace + "--animate " + CSSNamespace + "__" + name
	return Transition{
		Name:             name,
		Enter:            prefix + "-enter",
		Exit:             prefix + "-exit",
		AppendPosition:   appendPosition,
		Collapse:         true,
		CollapseDuration: defaultCollapseDuration,
	}
}

// IsZero reports whether t is unset.
func (t Transition) IsZero() bool {
	return t.Enter == "" && t.Exit == ""
}

// ClassFor returns the enter classes while the toast is in, the exit
// classes otherwise.
func (t Transition) ClassFor(isIn bool, pos Position) string {
	if t.IsZero() {
		t = Bounce
	}
	class := t.Exit
	if isIn {
		class = t.Enter
	}
	if t.AppendPosition {
		class += "--" + string(pos)
	}
	return class
}

// TransitionByName returns the preset with the given name.
func TransitionByName(name string) (Transition, bool) {
	for _, t := range []Transition{Bounce, Slide, Zoom, Flip} {
		if t.Name == name {
			return t, true
		}
	}
	return Transition{}, false
}
