// Package undo implements the single-slot, time-boxed buffer behind an
// "item deleted, press UNDO" affordance. A controller holds at most one staged
// entity: staging another replaces it, Undo hands it back, and an elapsed
// countdown discards it. Nothing in this package is persisted.
package undo

import (
	"sync"
	"time"
)

// DefaultTimeout is the countdown used when New is given a non-positive
// timeout.
const DefaultTimeout = 5 * time.Second

// Event kinds emitted on the controller's feed.
const (
	// EventRestored is emitted when a staged entity is handed back by Undo.
	EventRestored = "restored"
	// EventExpired is emitted when the countdown elapses and the staged
	// entity is discarded.
	EventExpired = "expired"
)

// Event is a notification about the fate of a staged entity. Action is the
// label the entity was staged with, for display ("Rice restored").
type Event struct {
	Kind   string
	Action string
}

// Controller is the undo state machine. It is empty or holds exactly one
// pending entry; last stage wins. All methods are safe for concurrent use.
//
// Owners must call Close on every exit path of the scope that created the
// controller, or an outstanding countdown keeps its timer goroutine alive.
type Controller[T any] struct {
	mu      sync.Mutex
	timeout time.Duration
	now     func() time.Time

	pending  bool
	data     T
	action   string
	stagedAt time.Time
	timer    *time.Timer

	// gen invalidates countdown callbacks that lost a race with Stage,
	// Undo, or Clear: a callback only acts if its generation is current.
	gen uint64

	events chan Event
}

// New returns an empty controller whose countdowns run for timeout. A
// non-positive timeout falls back to DefaultTimeout.
func New[T any](timeout time.Duration) *Controller[T] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Controller[T]{
		timeout: timeout,
		now:     time.Now,
		events:  make(chan Event, 8),
	}
}

// Events returns the notification feed. Sends are non-blocking: when nobody
// drains the channel, notifications are dropped, never queued against the
// caller. The channel is never closed.
func (c *Controller[T]) Events() <-chan Event {
	return c.events
}

// Stage buffers data for possible restoration and starts the countdown. Any
// previously pending entry is displaced immediately; its restorability is
// gone even though its countdown never finished.
func (c *Controller[T]) Stage(data T, action string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.pending = true
	c.data = data
	c.action = action
	c.stagedAt = c.now()

	gen := c.gen
	c.timer = time.AfterFunc(c.timeout, func() { c.expire(gen) })
}

// Undo cancels the countdown and hands back the staged entity. ok is false
// when nothing is pending; callers treat that as a no-op, not an error.
func (c *Controller[T]) Undo() (data T, action string, ok bool) {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		var zero T
		return zero, "", false
	}
	data, action = c.data, c.action
	c.cancelLocked()
	c.dropLocked()
	c.mu.Unlock()

	c.emit(Event{Kind: EventRestored, Action: action})
	return data, action, true
}

// Clear dismisses a pending entry without restoring it. No event fires;
// dismissal is not expiry. Clearing an empty controller does nothing.
func (c *Controller[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.dropLocked()
}

// Pending reports whether an entry is currently restorable.
func (c *Controller[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Remaining returns how much countdown is left for the pending entry,
// clipped to [0, timeout]. An empty controller reports zero. The value is
// for display; it may be stale by the time it is read.
func (c *Controller[T]) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.pending {
		return 0
	}
	left := c.timeout - c.now().Sub(c.stagedAt)
	if left < 0 {
		return 0
	}
	if left > c.timeout {
		return c.timeout
	}
	return left
}

// Close discards any pending entry and stops its countdown. It is
// idempotent. The events channel stays open; readers block or fall through
// on their own select.
func (c *Controller[T]) Close() {
	c.Clear()
}

// expire discards the staged entity after the countdown, unless the entry it
// was armed for is no longer current.
func (c *Controller[T]) expire(gen uint64) {
	c.mu.Lock()
	if !c.pending || gen != c.gen {
		c.mu.Unlock()
		return
	}
	action := c.action
	c.dropLocked()
	c.mu.Unlock()

	c.emit(Event{Kind: EventExpired, Action: action})
}

// cancelLocked stops the countdown and invalidates callbacks already in
// flight.
func (c *Controller[T]) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// dropLocked empties the slot, releasing the staged entity to the garbage
// collector.
func (c *Controller[T]) dropLocked() {
	var zero T
	c.pending = false
	c.data = zero
	c.action = ""
}

// emit sends without blocking; an unread feed drops the event.
func (c *Controller[T]) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
	}
}
