package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Ref is a slot holding the node a component rendered for it.
// The zero value is an empty slot.
type Ref struct {
	Current *VNode
}

// Set stores node in the slot. A nil Ref is ignored.
func (r *Ref) Set(node *VNode) {
	if r != nil {
		r.Current = node
	}
}

// Get returns the node held by the slot, or nil.
func (r *Ref) Get() *VNode {
	if r == nil {
		return nil
	}
	return r.Current
}

// Attr returns the value of the named attribute and whether it was set.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// ClassName returns the class attribute as a string, or "".
func (v *VNode) ClassName() string {
	val, _ := v.Attr("class")
	s, _ := val.(string)
	return s
}

// StyleMap returns the style attribute when it was set as a Style.
func (v *VNode) StyleMap() Style {
	val, _ := v.Attr("style")
	s, _ := val.(Style)
	return s
}
