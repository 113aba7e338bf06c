// Package toast renders stacked, positioned notification widgets.
//
// The package is the rendering side of toastify. A state engine (see
// pkg/engine) owns the active toasts; the Container defined here is a pure
// render subscriber over that engine. On every state change it is asked to
// Render and produces:
//
//	<div class="Toastify" id="<ContainerID>">
//	  <div class="Toastify__toast-container Toastify__toast-container--top-left" style="pointer-events: none"></div>
//	  <div class="Toastify__toast-container Toastify__toast-container--top-right">
//	    <div class="Toastify--animate Toastify__bounce-enter--top-right Toastify__toast ..." style="--len: 1; --nth: 1">...</div>
//	  </div>
//	  ...
//	</div>
//
// One wrapper is emitted for every Position, even when empty, so the
// client always has a stable mount point for enter animations. Empty
// wrappers get pointer-events: none so they never block clicks.
//
// # Ordering
//
// Toasts inside a wrapper are sorted by their optional Order. Toasts with
// an Order come first: ascending for top positions, descending for bottom
// positions. Toasts without an Order follow in insertion order. The text
// direction does not influence ordering.
//
// # Class names
//
// The wrapper class is either the default class joined with a StaticClass,
// or whatever a ComputedClass returns for the position:
//
//	toast.Options{ClassName: toast.ComputedClass(func(c toast.ClassContext) string {
//	    return c.DefaultClassName + " my-" + string(c.Position)
//	})}
//
// # Showing toasts
//
// Anything implementing Notifier can be used with the helpers:
//
//	toast.Success(eng, "Project deleted")
//	toast.ShowWithTitle(eng, toast.TypeInfo, "Settings", "Your changes have been saved.")
package toast
