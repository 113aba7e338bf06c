package toast

import (
	"strconv"

	"github.com/vango-dev/toastify/pkg/vdom"
)

// Engine is the state engine a Container renders from.
type Engine interface {
	// ContainerRef is the slot the engine reads the mounted root from.
	ContainerRef() *vdom.Ref

	// GetToastToRender calls fn once per position with that position's
	// toasts (possibly none) and collects the returned nodes.
	GetToastToRender(fn func(pos Position, toasts []*Toast) *vdom.VNode) []*vdom.VNode

	// IsToastActive reports whether the toast is shown and not exiting.
	IsToastActive(id ID) bool
}

// Container renders every position group of an Engine.
//
// It keeps no toast state. The root node is allocated once and reused for
// the lifetime of the container, so a Ref handed out after the first
// render keeps pointing at the live root. A Container is not safe for
// concurrent use; callers serialize Render.
type Container struct {
	engine  Engine
	opts    Options
	ref     *vdom.Ref
	root    *vdom.VNode
	mounted bool
}

// NewContainer creates a container over engine. ref, if non-nil, receives
// the root node after the first render.
func NewContainer(engine Engine, opts Options, ref *vdom.Ref) *Container {
	return &Container{
		engine: engine,
		opts:   opts,
		ref:    ref,
		root:   vdom.Div(vdom.Class(CSSNamespace), vdom.ID(opts.ContainerID)),
	}
}

// Options returns the options the container was created with.
func (c *Container) Options() Options {
	return c.opts
}

// Render implements vdom.Component.
func (c *Container) Render() *vdom.VNode {
	c.root.Children = c.engine.GetToastToRender(c.renderPosition)

	internal := c.engine.ContainerRef()
	internal.Set(c.root)
	if !c.mounted {
		c.mounted = true
		c.ref.Set(internal.Get())
	}
	return c.root
}

// renderPosition renders the wrapper of one position group.
func (c *Container) renderPosition(pos Position, toasts []*Toast) *vdom.VNode {
	style := c.opts.Style.Clone()
	if len(toasts) == 0 {
		style["pointer-events"] = "none"
	}

	sorted := SortForRender(toasts, pos)
	count := strconv.Itoa(len(sorted))

	return vdom.Div(
		vdom.Key("container-"+string(pos)),
		vdom.Attr{Key: "class", Value: ResolveClassName(c.opts.ClassName, pos, c.opts.RTL)},
		vdom.StyleMap(style),
		vdom.Range(sorted, func(t *Toast, i int) *vdom.VNode {
			props := t.Props
			props.Style = props.Style.Merge(vdom.Style{
				"--nth": strconv.Itoa(i + 1),
				"--len": count,
			})
			return View(props, c.engine.IsToastActive(props.ToastID), t.Content)
		}),
	)
}
