package toast

import (
	"fmt"
	"strings"
	"time"

	"github.com/vango-dev/toastify/pkg/vdom"
)

// ID identifies a toast.
type ID string

// Type represents the toast notification type.
type Type string

const (
	TypeDefault Type = "default"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// ParseType converts s into a Type. The empty string is TypeDefault.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TypeDefault, nil
	case TypeDefault, TypeSuccess, TypeError, TypeWarning, TypeInfo:
		return t, nil
	}
	return "", fmt.Errorf("toast: unknown type %q", s)
}

// Theme selects the color scheme class of a toast.
type Theme string

const (
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	ThemeColored Theme = "colored"
)

// ParseTheme converts s into a Theme. The empty string is ThemeLight.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return ThemeLight, nil
	case ThemeLight, ThemeDark, ThemeColored:
		return t, nil
	}
	return "", fmt.Errorf("toast: unknown theme %q", s)
}

// Direction is the axis a toast can be dragged along to dismiss it.
type Direction string

const (
	DirectionX Direction = "x"
	DirectionY Direction = "y"
)

// CloseButtonProps is passed to a CloseButtonFunc.
type CloseButtonProps struct {
	ToastID   ID
	Type      Type
	Theme     Theme
	AriaLabel string
}

// CloseButtonFunc renders the close control of a toast.
type CloseButtonFunc func(CloseButtonProps) *vdom.VNode

// Toast is a single notification: its content and display options.
type Toast struct {
	Content *vdom.VNode
	Props   Props
}

// ID returns the toast identifier.
func (t *Toast) ID() ID {
	return t.Props.ToastID
}

// Clone returns a copy of t whose props can be modified independently.
func (t *Toast) Clone() *Toast {
	if t == nil {
		return nil
	}
	return &Toast{Content: t.Content, Props: t.Props.Clone()}
}

// Props are the display options of one toast. The engine fills them from
// the container Options and then applies per-toast Option overrides.
type Props struct {
	ToastID     ID
	Key         string
	ContainerID string

	// Order overrides insertion order within a position; nil means unset.
	Order *int

	Style    vdom.Style
	Position Position
	Type     Type
	Theme    Theme

	// AutoClose is the time before the toast dismisses itself; <= 0 disables it.
	AutoClose       time.Duration
	HideProgressBar bool
	CloseButton     CloseButtonFunc
	Transition      Transition

	PauseOnHover       bool
	PauseOnFocusLoss   bool
	CloseOnClick       bool
	Draggable          bool
	DraggablePercent   int
	DraggableDirection Direction

	Role          string
	RTL           bool
	ClassName     string
	BodyClassName string

	// IsPaused is maintained by the engine while the countdown is halted.
	IsPaused bool

	Data map[string]any
}

// HasOrder reports whether an explicit order was set.
func (p Props) HasOrder() bool {
	return p.Order != nil
}

// Clone returns a copy of p that shares no maps or pointers with it.
func (p Props) Clone() Props {
	out := p
	if p.Order != nil {
		order := *p.Order
		out.Order = &order
	}
	if p.Style != nil {
		out.Style = p.Style.Clone()
	}
	if p.Data != nil {
		out.Data = make(map[string]any, len(p.Data))
		for k, v := range p.Data {
			out.Data[k] = v
		}
	}
	return out
}

// Option overrides one display option of a toast.
type Option func(*Props)

// Apply runs opts against p in order.
func (p *Props) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
}

// WithToastID sets the toast identifier instead of generating one.
func WithToastID(id ID) Option {
	return func(p *Props) { p.ToastID = id }
}

// WithType sets the toast type.
func WithType(t Type) Option {
	return func(p *Props) { p.Type = t }
}

// WithPosition sets the screen position.
func WithPosition(pos Position) Option {
	return func(p *Props) { p.Position = pos }
}

// WithOrder sets an explicit order within the position.
func WithOrder(order int) Option {
	return func(p *Props) { p.Order = &order }
}

// WithoutOrder clears an explicit order.
func WithoutOrder() Option {
	return func(p *Props) { p.Order = nil }
}

// WithAutoClose sets the auto-close delay; d <= 0 keeps the toast until dismissed.
func WithAutoClose(d time.Duration) Option {
	return func(p *Props) { p.AutoClose = d }
}

// WithStyle merges style into the toast style.
func WithStyle(style vdom.Style) Option {
	return func(p *Props) { p.Style = p.Style.Merge(style) }
}

// WithTheme sets the theme.
func WithTheme(theme Theme) Option {
	return func(p *Props) { p.Theme = theme }
}

// WithClassName adds a class to the toast element.
func WithClassName(class string) Option {
	return func(p *Props) { p.ClassName = class }
}

// WithRole sets the role attribute of the toast body.
func WithRole(role string) Option {
	return func(p *Props) { p.Role = role }
}

// WithTransition sets the enter/exit animation.
func WithTransition(t Transition) Option {
	return func(p *Props) { p.Transition = t }
}

// WithCloseButton replaces the close button renderer.
func WithCloseButton(fn CloseButtonFunc) Option {
	return func(p *Props) { p.CloseButton = fn }
}

// WithoutCloseButton removes the close button.
func WithoutCloseButton() Option {
	return func(p *Props) { p.CloseButton = nil }
}

// WithoutProgressBar hides the countdown bar.
func WithoutProgressBar() Option {
	return func(p *Props) { p.HideProgressBar = true }
}

// WithDraggable enables or disables drag-to-dismiss.
func WithDraggable(draggable bool) Option {
	return func(p *Props) { p.Draggable = draggable }
}

// WithData attaches arbitrary data to the toast.
func WithData(key string, value any) Option {
	return func(p *Props) {
		if p.Data == nil {
			p.Data = make(map[string]any)
		}
		p.Data[key] = value
	}
}
