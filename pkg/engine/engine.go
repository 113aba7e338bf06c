package engine

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vango-dev/toastify/pkg/toast"
	"github.com/vango-dev/toastify/pkg/vdom"
)

// DefaultExitTimeout is how long a dismissed toast stays rendered when the
// client never reports the end of its exit animation.
const DefaultExitTimeout = time.Second

// entry is the engine-side record of a visible toast.
type entry struct {
	toast  *toast.Toast
	active bool

	// timer is the auto-close countdown while active, the exit timeout
	// while exiting. gen invalidates callbacks of replaced timers.
	timer     Timer
	gen       uint64
	started   time.Time
	remaining time.Duration
}

// Engine owns the toasts of one container. It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	opts        toast.Options
	exitTimeout time.Duration
	newID       func() toast.ID
	clock       Clock
	logger      *slog.Logger
	metrics     *Metrics

	ref     vdom.Ref
	entries map[toast.ID]*entry
	order   []toast.ID
	queue   []*toast.Toast

	listeners    []listener
	nextListener int
	closed       bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithOptions sets the container options the toast defaults derive from.
func WithOptions(opts toast.Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithLogger sets the logger. Records carry component=engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.With("component", "engine")
		}
	}
}

// WithMetrics records engine state in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithExitTimeout sets how long a dismissed toast is kept before it is
// removed without a client confirmation. Zero keeps it until Remove.
func WithExitTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.exitTimeout = d
	}
}

// WithIDGenerator replaces the random toast id generator.
func WithIDGenerator(fn func() toast.ID) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		opts:        toast.DefaultOptions(),
		exitTimeout: DefaultExitTimeout,
		newID:       func() toast.ID { return toast.ID(uuid.NewString()) },
		clock:       realClock{},
		logger:      slog.Default().With("component", "engine"),
		entries:     make(map[toast.ID]*entry),
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.opts.Position.Valid() {
		e.opts.Position = toast.TopRight
	}
	return e
}

// Options returns the container options of the engine.
func (e *Engine) Options() toast.Options {
	return e.opts
}

// ContainerRef implements toast.Engine.
func (e *Engine) ContainerRef() *vdom.Ref {
	return &e.ref
}

// Show adds a toast and returns its id. Showing an id that is already
// visible or queued updates that toast instead.
func (e *Engine) Show(content *vdom.VNode, opts ...toast.Option) toast.ID {
	props := e.opts.ToastProps()
	props.Apply(opts...)

	e.mu.Lock()
	if props.ToastID == "" {
		props.ToastID = e.newID()
	}
	id := props.ToastID
	if props.Key == "" {
		props.Key = string(id)
	}
	if !props.Position.Valid() {
		props.Position = e.opts.Position
	}
	props.ContainerID = e.opts.ContainerID
	props.IsPaused = false

	if e.known(id) {
		e.mu.Unlock()
		if err := e.Update(id, content, opts...); err != nil {
			e.logger.Warn("show existing toast", "id", id, "error", err)
		}
		return id
	}

	t := &toast.Toast{Content: content, Props: props}
	kind := EventAdded
	if e.opts.Limit > 0 && len(e.order) >= e.opts.Limit {
		e.queue = append(e.queue, t)
		kind = EventQueued
	} else {
		e.activateLocked(t)
	}
	e.observeLocked()
	e.mu.Unlock()

	e.logger.Debug("toast shown", "id", id, "position", props.Position, "type", props.Type, "queued", kind == EventQueued)
	e.emit(Event{Kind: kind, ToastID: id, Position: props.Position, ContainerID: props.ContainerID})
	return id
}

// Update changes the content and props of a visible or queued toast. A nil
// content keeps the current one.
func (e *Engine) Update(id toast.ID, content *vdom.VNode, opts ...toast.Option) error {
	e.mu.Lock()

	var t *toast.Toast
	ent := e.entries[id]
	if ent != nil {
		t = ent.toast
	} else if i := e.queueIndex(id); i >= 0 {
		t = e.queue[i]
	}
	if t == nil {
		e.mu.Unlock()
		return ErrToastNotFound
	}

	before := t.Props.AutoClose
	props := t.Props.Clone()
	props.Apply(opts...)
	props.ToastID = id
	props.ContainerID = e.opts.ContainerID
	if !props.Position.Valid() {
		props.Position = t.Props.Position
	}
	t.Props = props
	if content != nil {
		t.Content = content
	}

	if ent != nil && ent.active && props.AutoClose != before {
		e.stopTimerLocked(ent)
		ent.remaining = props.AutoClose
		if !props.IsPaused {
			e.startCountdownLocked(ent)
		}
	}
	e.observeLocked()
	e.mu.Unlock()

	e.emit(Event{Kind: EventUpdated, ToastID: id, Position: props.Position, ContainerID: props.ContainerID})
	return nil
}

// Dismiss starts the exit of a toast. Queued toasts are dropped. Unknown
// or already exiting toasts are ignored.
func (e *Engine) Dismiss(id toast.ID) {
	e.mu.Lock()
	if i := e.queueIndex(id); i >= 0 {
		t := e.queue[i]
		e.queue = slices.Delete(e.queue, i, i+1)
		e.observeLocked()
		e.mu.Unlock()
		e.emit(Event{Kind: EventRemoved, ToastID: id, Position: t.Props.Position, ContainerID: t.Props.ContainerID})
		return
	}

	ev, ok := e.dismissLocked(id)
	e.mu.Unlock()
	if ok {
		e.emit(ev)
	}
}

// DismissAll starts the exit of every visible toast and empties the queue.
func (e *Engine) DismissAll() {
	e.mu.Lock()
	e.queue = nil
	events := make([]Event, 0, len(e.order))
	for _, id := range e.order {
		if ev, ok := e.dismissLocked(id); ok {
			events = append(events, ev)
		}
	}
	e.observeLocked()
	e.mu.Unlock()

	for _, ev := range events {
		e.emit(ev)
	}
}

// Remove drops a toast once its exit has finished and promotes queued
// toasts into the freed slots. Unknown ids are ignored.
func (e *Engine) Remove(id toast.ID) {
	e.mu.Lock()
	events := e.removeLocked(id)
	e.mu.Unlock()

	for _, ev := range events {
		e.emit(ev)
	}
}

// Pause halts the countdown of an active toast, keeping the remaining time.
func (e *Engine) Pause(id toast.ID) {
	e.mu.Lock()
	ev, ok := e.pauseLocked(id)
	e.mu.Unlock()
	if ok {
		e.emit(ev)
	}
}

// Resume restarts the countdown of a paused toast.
func (e *Engine) Resume(id toast.ID) {
	e.mu.Lock()
	ev, ok := e.resumeLocked(id)
	e.mu.Unlock()
	if ok {
		e.emit(ev)
	}
}

// PauseAll pauses every toast that pauses on focus loss.
func (e *Engine) PauseAll() {
	e.forEachActive(func(ent *entry) bool { return ent.toast.Props.PauseOnFocusLoss }, e.pauseLocked)
}

// ResumeAll resumes every toast that pauses on focus loss.
func (e *Engine) ResumeAll() {
	e.forEachActive(func(ent *entry) bool { return ent.toast.Props.PauseOnFocusLoss }, e.resumeLocked)
}

func (e *Engine) forEachActive(match func(*entry) bool, apply func(toast.ID) (Event, bool)) {
	e.mu.Lock()
	var events []Event
	for _, id := range e.order {
		ent := e.entries[id]
		if !ent.active || !match(ent) {
			continue
		}
		if ev, ok := apply(id); ok {
			events = append(events, ev)
		}
	}
	e.mu.Unlock()

	for _, ev := range events {
		e.emit(ev)
	}
}

// Action reports that the action control named action was clicked on a
// visible toast. Listeners receive an EventAction; unknown or exiting
// toasts and empty actions are ignored.
func (e *Engine) Action(id toast.ID, action string) {
	if action == "" {
		return
	}
	e.mu.Lock()
	ent := e.entries[id]
	if ent == nil || !ent.active {
		e.mu.Unlock()
		return
	}
	ev := Event{Kind: EventAction, ToastID: id, Position: ent.toast.Props.Position, ContainerID: ent.toast.Props.ContainerID, Action: action}
	e.mu.Unlock()

	e.logger.Debug("toast action", "id", id, "action", action)
	e.emit(ev)
}

// ClearWaitingQueue drops every queued toast.
func (e *Engine) ClearWaitingQueue() {
	e.mu.Lock()
	e.queue = nil
	e.observeLocked()
	e.mu.Unlock()
}

// IsToastActive implements toast.Engine.
func (e *Engine) IsToastActive(id toast.ID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent := e.entries[id]
	return ent != nil && ent.active
}

// Get returns a copy of a visible or queued toast.
func (e *Engine) Get(id toast.ID) (*toast.Toast, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ent := e.entries[id]; ent != nil {
		return ent.toast.Clone(), true
	}
	if i := e.queueIndex(id); i >= 0 {
		return e.queue[i].Clone(), true
	}
	return nil, false
}

// Len returns the number of visible toasts, exiting ones included.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.order)
}

// Queued returns the number of toasts waiting for a slot.
func (e *Engine) Queued() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// GetToastToRender implements toast.Engine. It snapshots the visible
// toasts and calls fn once per position, outside the engine lock.
func (e *Engine) GetToastToRender(fn func(pos toast.Position, toasts []*toast.Toast) *vdom.VNode) []*vdom.VNode {
	e.mu.Lock()
	groups := make(map[toast.Position][]*toast.Toast, len(toast.Positions))
	n := len(e.order)
	for i := 0; i < n; i++ {
		idx := i
		if e.opts.NewestOnTop {
			idx = n - 1 - i
		}
		t := e.entries[e.order[idx]].toast.Clone()
		groups[t.Props.Position] = append(groups[t.Props.Position], t)
	}
	e.mu.Unlock()

	out := make([]*vdom.VNode, 0, len(toast.Positions))
	for _, pos := range toast.Positions {
		if node := fn(pos, groups[pos]); node != nil {
			out = append(out, node)
		}
	}
	return out
}

// Subscribe registers fn for change events and returns a function that
// unregisters it. fn runs outside the engine lock and may call back into
// the engine.
func (e *Engine) Subscribe(fn func(Event)) (cancel func()) {
	e.mu.Lock()
	e.nextListener++
	id := e.nextListener
	e.listeners = append(e.listeners, listener{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.listeners = slices.DeleteFunc(e.listeners, func(l listener) bool { return l.id == id })
	}
}

// Close stops every timer and drops all listeners. Toasts stay readable.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.closed = true
	for _, ent := range e.entries {
		e.stopTimerLocked(ent)
	}
	e.listeners = nil
	return nil
}

func (e *Engine) emit(ev Event) {
	e.mu.Lock()
	listeners := slices.Clone(e.listeners)
	e.mu.Unlock()

	for _, l := range listeners {
		l.fn(ev)
	}
}

func (e *Engine) known(id toast.ID) bool {
	return e.entries[id] != nil || e.queueIndex(id) >= 0
}

func (e *Engine) queueIndex(id toast.ID) int {
	return slices.IndexFunc(e.queue, func(t *toast.Toast) bool { return t.Props.ToastID == id })
}

// activateLocked makes t visible and starts its countdown.
func (e *Engine) activateLocked(t *toast.Toast) {
	ent := &entry{toast: t, active: true, remaining: t.Props.AutoClose}
	e.entries[t.Props.ToastID] = ent
	e.order = append(e.order, t.Props.ToastID)
	e.startCountdownLocked(ent)
	e.metrics.toastShown(t.Props.Type)
}

func (e *Engine) startCountdownLocked(ent *entry) {
	if e.closed || ent.remaining <= 0 {
		return
	}
	ent.gen++
	gen := ent.gen
	id := ent.toast.Props.ToastID
	ent.started = e.clock.Now()
	ent.timer = e.clock.AfterFunc(ent.remaining, func() { e.expire(id, gen) })
}

func (e *Engine) stopTimerLocked(ent *entry) {
	ent.gen++
	if ent.timer != nil {
		ent.timer.Stop()
		ent.timer = nil
	}
}

// expire is the auto-close callback.
func (e *Engine) expire(id toast.ID, gen uint64) {
	e.mu.Lock()
	ent := e.entries[id]
	if ent == nil || ent.gen != gen || !ent.active {
		e.mu.Unlock()
		return
	}
	ev, ok := e.dismissLocked(id)
	e.mu.Unlock()

	e.logger.Debug("toast auto-closed", "id", id)
	if ok {
		e.emit(ev)
	}
}

func (e *Engine) dismissLocked(id toast.ID) (Event, bool) {
	ent := e.entries[id]
	if ent == nil || !ent.active {
		return Event{}, false
	}
	e.stopTimerLocked(ent)
	ent.active = false
	ent.toast.Props.IsPaused = false

	if e.exitTimeout > 0 && !e.closed {
		gen := ent.gen
		ent.timer = e.clock.AfterFunc(e.exitTimeout, func() { e.exitTimedOut(id, gen) })
	}
	return Event{Kind: EventDismissed, ToastID: id, Position: ent.toast.Props.Position, ContainerID: ent.toast.Props.ContainerID}, true
}

func (e *Engine) exitTimedOut(id toast.ID, gen uint64) {
	e.mu.Lock()
	ent := e.entries[id]
	if ent == nil || ent.gen != gen || ent.active {
		e.mu.Unlock()
		return
	}
	events := e.removeLocked(id)
	e.mu.Unlock()

	for _, ev := range events {
		e.emit(ev)
	}
}

// removeLocked drops id and promotes queued toasts. It returns the events
// to emit once the lock is released.
func (e *Engine) removeLocked(id toast.ID) []Event {
	var events []Event

	if ent := e.entries[id]; ent != nil {
		e.stopTimerLocked(ent)
		delete(e.entries, id)
		e.order = slices.DeleteFunc(e.order, func(o toast.ID) bool { return o == id })
		e.metrics.toastRemoved()
		events = append(events, Event{Kind: EventRemoved, ToastID: id, Position: ent.toast.Props.Position, ContainerID: ent.toast.Props.ContainerID})
	} else if i := e.queueIndex(id); i >= 0 {
		t := e.queue[i]
		e.queue = slices.Delete(e.queue, i, i+1)
		events = append(events, Event{Kind: EventRemoved, ToastID: id, Position: t.Props.Position, ContainerID: t.Props.ContainerID})
	} else {
		return nil
	}

	for len(e.queue) > 0 && (e.opts.Limit <= 0 || len(e.order) < e.opts.Limit) {
		next := e.queue[0]
		e.queue = e.queue[1:]
		e.activateLocked(next)
		events = append(events, Event{Kind: EventAdded, ToastID: next.Props.ToastID, Position: next.Props.Position, ContainerID: next.Props.ContainerID})
	}
	e.observeLocked()
	return events
}

func (e *Engine) pauseLocked(id toast.ID) (Event, bool) {
	ent := e.entries[id]
	if ent == nil || !ent.active || ent.toast.Props.IsPaused {
		return Event{}, false
	}
	if ent.timer != nil {
		elapsed := e.clock.Now().Sub(ent.started)
		ent.remaining -= elapsed
		if ent.remaining < 0 {
			ent.remaining = 0
		}
	}
	e.stopTimerLocked(ent)
	ent.toast.Props.IsPaused = true
	return Event{Kind: EventPaused, ToastID: id, Position: ent.toast.Props.Position, ContainerID: ent.toast.Props.ContainerID}, true
}

func (e *Engine) resumeLocked(id toast.ID) (Event, bool) {
	ent := e.entries[id]
	if ent == nil || !ent.active || !ent.toast.Props.IsPaused {
		return Event{}, false
	}
	ent.toast.Props.IsPaused = false
	if ent.toast.Props.AutoClose > 0 && ent.remaining <= 0 {
		// The countdown ran out while paused: close right away.
		ent.remaining = time.Nanosecond
	}
	e.startCountdownLocked(ent)
	return Event{Kind: EventResumed, ToastID: id, Position: ent.toast.Props.Position, ContainerID: ent.toast.Props.ContainerID}, true
}

func (e *Engine) observeLocked() {
	if e.metrics == nil {
		return
	}
	counts := make(map[toast.Position]int, len(toast.Positions))
	for _, ent := range e.entries {
		counts[ent.toast.Props.Position]++
	}
	e.metrics.observe(counts, len(e.queue))
}
