package toast

import (
	"cmp"
	"slices"
)

// CompareByOrder orders two toasts of the same position for display.
//
// Toasts without an Order sort after toasts with one. Two toasts without an
// Order compare equal so a stable sort keeps their insertion order. Defined
// orders ascend for top positions and descend otherwise.
func CompareByOrder(a, b *Toast, pos Position) int {
	ao, bo := a.Props.Order, b.Props.Order
	switch {
	case ao == nil && bo == nil:
		return 0
	case ao == nil:
		return 1
	case bo == nil:
		return -1
	case pos.IsTop():
		return cmp.Compare(*ao, *bo)
	default:
		return cmp.Compare(*bo, *ao)
	}
}

// SortForRender returns a stably sorted copy of list for pos.
func SortForRender(list []*Toast, pos Position) []*Toast {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b *Toast) int {
		return CompareByOrder(a, b, pos)
	})
	return out
}
