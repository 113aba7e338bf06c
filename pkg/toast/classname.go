package toast

import "strings"

// ClassContext is passed to a ComputedClass.
type ClassContext struct {
	Position         Position
	RTL              bool
	DefaultClassName string
}

// ClassName is the position wrapper class override: either a StaticClass
// or a ComputedClass.
type ClassName interface {
	resolve(ctx ClassContext) string
}

// StaticClass is appended to the default wrapper class.
type StaticClass string

func (s StaticClass) resolve(ctx ClassContext) string {
	extra := strings.TrimSpace(string(s))
	if extra == "" {
		return ctx.DefaultClassName
	}
	return ctx.DefaultClassName + " " + extra
}

// ComputedClass computes the wrapper class. Its result is used as is;
// a panic inside it propagates to the caller of Container.Render.
type ComputedClass func(ctx ClassContext) string

func (f ComputedClass) resolve(ctx ClassContext) string {
	if f == nil {
		return ctx.DefaultClassName
	}
	return f(ctx)
}

// DefaultContainerClass returns the wrapper class used when no override is set.
func DefaultContainerClass(pos Position, rtl bool) string {
	base := CSSNamespace + "__toast-container"
	class := base + " " + base + "--" + string(pos)
	if rtl {
		class += " " + base + "--rtl"
	}
	return class
}

// ResolveClassName computes the wrapper class for pos.
func ResolveClassName(cn ClassName, pos Position, rtl bool) string {
	ctx := ClassContext{
		Position:         pos,
		RTL:              rtl,
		DefaultClassName: DefaultContainerClass(pos, rtl),
	}
	if cn == nil {
		return ctx.DefaultClassName
	}
	return cn.resolve(ctx)
}
