// Package engine is the toast state engine.
//
// An Engine owns the toasts of one container: which are visible, in which
// order they were added, which are exiting, and which wait for a free slot
// when a display limit is set. It runs the auto-close countdowns and
// notifies subscribers after every change so a renderer can redraw.
//
// Lifecycle of a toast:
//
//	Show ──► active ──(auto-close | Dismiss)──► exiting ──(Remove | exit timeout)──► gone
//	   └──► queued (limit reached) ──(slot freed)──► active
//
// While active a toast can be paused and resumed; the remaining countdown
// is kept across a pause. Dismiss and Remove are idempotent, so a timer
// that fires late or twice never removes a toast that was shown again
// under the same id.
//
// The engine implements toast.Engine and toast.Notifier:
//
//	eng := engine.New(engine.WithOptions(toast.DefaultOptions()))
//	defer eng.Close()
//	container := toast.NewContainer(eng, eng.Options(), nil)
//	eng.Subscribe(func(engine.Event) { redraw(container.Render()) })
//	toast.Success(eng, "Saved")
package engine
