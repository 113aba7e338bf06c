// Package vdom provides the virtual DOM used by toastify components.
//
// Components build an in-memory tree of VNodes which pkg/render turns into
// HTML. The tree is rebuilt on every state change and shipped to the
// browser as a fragment, so the model stays small: elements, text,
// fragments, nested components and raw HTML.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("Toastify__toast"), ID("t1"),
//	    Div(Class("Toastify__toast-body"), Text("Saved")),
//	    StyleMap(Style{"--nth": "1"}),
//	)
//
// Arguments may be Attr values, child *VNode values, []*VNode slices,
// Components or plain strings (text shorthand). Nil arguments are ignored
// which allows conditional attributes and children.
//
// # Styles
//
// Style is a CSS declaration map. It renders with sorted property names so
// output is deterministic, and supports custom properties such as --nth.
//
// # Refs
//
// A Ref is a slot that a component fills with the node it rendered. It is
// the server-side counterpart of a DOM element handle.
package vdom
