package toast

import (
	"strconv"

	"github.com/vango-dev/toastify/pkg/vdom"
)

const closeIconSVG = `<svg aria-hidden="true" viewBox="0 0 14 16"><path fill-rule="evenodd" d="M7.71 8.23l3.75 3.75-1.48 1.48-3.75-3.75-3.75 3.75L1 11.98l3.75-3.75L1 4.48 2.48 3l3.75 3.75L9.98 3l1.48 1.48-3.75 3.75z"/></svg>`

// CloseButton is the default close control. The client script recognizes
// it by data-toast-close, which keeps data-action free for action buttons.
func CloseButton(p CloseButtonProps) *vdom.VNode {
	label := p.AriaLabel
	if label == "" {
		label = "close"
	}
	return vdom.Button(
		vdom.Class(
			CSSNamespace+"__close-button",
			CSSNamespace+"__close-button--"+string(p.Theme),
		),
		vdom.Type("button"),
		vdom.AriaLabel(label),
		vdom.Data("toast-close", "true"),
		vdom.Raw(closeIconSVG),
	)
}

// View renders one toast. isIn selects the enter or exit animation.
func View(p Props, isIn bool, content *vdom.VNode) *vdom.VNode {
	key := p.Key
	if key == "" {
		key = string(p.ToastID)
	}
	ns := CSSNamespace + "__toast"

	return vdom.Div(
		vdom.Key("toast-"+key),
		vdom.ID(string(p.ToastID)),
		vdom.Class(
			p.Transition.ClassFor(isIn, p.Position),
			ns,
			ns+"-theme--"+string(p.Theme),
			ns+"--"+string(p.Type),
			vdom.ClassIf(p.RTL, ns+"--rtl"),
			vdom.ClassIf(p.CloseOnClick, ns+"--close-on-click"),
			p.ClassName,
		),
		vdom.StyleMap(p.Style),
		behaviourAttrs(p, isIn),
		vdom.Div(
			vdom.Class(ns+"-body", p.BodyClassName),
			vdom.Role(p.Role),
			content,
		),
		vdom.When(p.CloseButton != nil, func() *vdom.VNode { return closeButton(p) }),
		vdom.When(p.AutoClose > 0, func() *vdom.VNode { return progressBar(p) }),
	)
}

// behaviourAttrs exposes the interaction flags to the client script.
func behaviourAttrs(p Props, isIn bool) []vdom.Attr {
	attrs := []vdom.Attr{
		vdom.Data("toast-id", string(p.ToastID)),
		vdom.Data("position", string(p.Position)),
		vdom.Data("in", strconv.FormatBool(isIn)),
		vdom.Data("paused", strconv.FormatBool(p.IsPaused)),
		vdom.Data("pause-on-hover", strconv.FormatBool(p.PauseOnHover)),
		vdom.Data("pause-on-focus-loss", strconv.FormatBool(p.PauseOnFocusLoss)),
		vdom.Data("close-on-click", strconv.FormatBool(p.CloseOnClick)),
		vdom.Data("draggable", strconv.FormatBool(p.Draggable)),
	}
	if p.Draggable {
		attrs = append(attrs,
			vdom.Data("draggable-percent", strconv.Itoa(p.DraggablePercent)),
			vdom.Data("draggable-direction", string(p.DraggableDirection)),
		)
	}
	if p.Transition.Collapse {
		attrs = append(attrs, vdom.Data("collapse-ms", strconv.FormatInt(p.Transition.CollapseDuration.Milliseconds(), 10)))
	}
	return attrs
}

func closeButton(p Props) *vdom.VNode {
	return p.CloseButton(CloseButtonProps{
		ToastID: p.ToastID,
		Type:    p.Type,
		Theme:   p.Theme,
	})
}

// progressBar renders the countdown bar. A hidden bar is still emitted,
// transparent, so the client can listen for its animation end.
func progressBar(p Props) *vdom.VNode {
	ns := CSSNamespace + "__progress-bar"

	state := "running"
	if p.IsPaused {
		state = "paused"
	}
	style := vdom.Style{
		"animation-duration":   strconv.FormatInt(p.AutoClose.Milliseconds(), 10) + "ms",
		"animation-play-state": state,
	}
	if p.HideProgressBar {
		style["opacity"] = "0"
	}

	return vdom.Div(
		vdom.Class(
			ns,
			ns+"--animated",
			ns+"-theme--"+string(p.Theme),
			ns+"--"+string(p.Type),
			vdom.ClassIf(p.RTL, ns+"--rtl"),
		),
		vdom.Role("progressbar"),
		vdom.AriaHidden(p.HideProgressBar),
		vdom.StyleMap(style),
	)
}
