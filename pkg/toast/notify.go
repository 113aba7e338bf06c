package toast

import "github.com/vango-dev/toastify/pkg/vdom"

// Notifier shows toasts. The state engine implements it.
type Notifier interface {
	Show(content *vdom.VNode, opts ...Option) ID
}

// Show displays a text toast of the given type.
func Show(n Notifier, level Type, message string, opts ...Option) ID {
	return n.Show(vdom.Text(message), append([]Option{WithType(level)}, opts...)...)
}

// Success shows a success toast.
//
//	toast.Success(eng, "Changes saved!")
func Success(n Notifier, message string, opts ...Option) ID {
	return Show(n, TypeSuccess, message, opts...)
}

// Error shows an error toast.
//
//	toast.Error(eng, "Failed to delete item")
func Error(n Notifier, message string, opts ...Option) ID {
	return Show(n, TypeError, message, opts...)
}

// Warning shows a warning toast.
func Warning(n Notifier, message string, opts ...Option) ID {
	return Show(n, TypeWarning, message, opts...)
}

// Info shows an info toast.
func Info(n Notifier, message string, opts ...Option) ID {
	return Show(n, TypeInfo, message, opts...)
}

// ShowWithTitle shows a toast with a title and message.
//
//	toast.ShowWithTitle(eng, toast.TypeSuccess, "Settings", "Your changes have been saved.")
func ShowWithTitle(n Notifier, level Type, title, message string, opts ...Option) ID {
	content := vdom.Fragment(
		vdom.Strong(vdom.Class(CSSNamespace+"__toast-title"), vdom.Text(title)),
		vdom.Div(vdom.Class(CSSNamespace+"__toast-message"), vdom.Text(message)),
	)
	return n.Show(content, append([]Option{WithType(level)}, opts...)...)
}

// ShowWithAction shows a toast with an action button. A click on the button
// is reported to the engine listeners as an action event carrying actionID;
// the toast itself stays up.
//
//	toast.ShowWithAction(eng, toast.TypeInfo, "Item deleted", "Undo", "undo-123")
func ShowWithAction(n Notifier, level Type, message, actionLabel, actionID string, opts ...Option) ID {
	content := vdom.Fragment(
		vdom.Span(vdom.Text(message)),
		ActionButton(actionLabel, actionID),
	)
	opts = append([]Option{WithType(level), WithData("action", actionID)}, opts...)
	return n.Show(content, opts...)
}

// ActionButton renders a button the client reports as an action click.
func ActionButton(label, actionID string) *vdom.VNode {
	return vdom.Button(
		vdom.Class(CSSNamespace+"__toast-action"),
		vdom.Type("button"),
		vdom.Data("action", actionID),
		vdom.Text(label),
	)
}

// Custom shows a toast with caller-built content.
func Custom(n Notifier, content *vdom.VNode, opts ...Option) ID {
	return n.Show(content, opts...)
}
