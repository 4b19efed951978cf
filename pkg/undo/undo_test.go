package undo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitEvent drains one event or fails the test after a grace period.
func waitEvent(t *testing.T, c *Controller[string]) Event {
	t.Helper()
	select {
	case ev := <-c.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event within grace period")
		return Event{}
	}
}

// assertNoEvent asserts the feed is silent right now.
func assertNoEvent(t *testing.T, c *Controller[string]) {
	t.Helper()
	select {
	case ev := <-c.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestStageAndUndo(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	assert.False(t, c.Pending())

	c.Stage("rice-snapshot", "Rice deleted")
	assert.True(t, c.Pending())

	data, action, ok := c.Undo()
	require.True(t, ok)
	assert.Equal(t, "rice-snapshot", data)
	assert.Equal(t, "Rice deleted", action)
	assert.False(t, c.Pending())

	ev := waitEvent(t, c)
	assert.Equal(t, EventRestored, ev.Kind)
	assert.Equal(t, "Rice deleted", ev.Action)
}

func TestUndoOnEmptyControllerIsNoOp(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	data, action, ok := c.Undo()
	assert.False(t, ok)
	assert.Empty(t, data)
	assert.Empty(t, action)
	assertNoEvent(t, c)
}

func TestStageDisplacesPreviousEntry(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Stage("first", "first deleted")
	c.Stage("second", "second deleted")

	data, _, ok := c.Undo()
	require.True(t, ok)
	assert.Equal(t, "second", data)

	// The displaced entry is gone for good.
	_, _, ok = c.Undo()
	assert.False(t, ok)
}

func TestCountdownExpiresEntry(t *testing.T) {
	c := New[string](30 * time.Millisecond)
	defer c.Close()

	c.Stage("rice-snapshot", "Rice deleted")

	ev := waitEvent(t, c)
	assert.Equal(t, EventExpired, ev.Kind)
	assert.Equal(t, "Rice deleted", ev.Action)
	assert.False(t, c.Pending())

	_, _, ok := c.Undo()
	assert.False(t, ok)
}

func TestStageRestartsCountdown(t *testing.T) {
	c := New[string](300 * time.Millisecond)
	defer c.Close()

	c.Stage("first", "first deleted")
	time.Sleep(200 * time.Millisecond)

	// Re-staging arms a fresh countdown; the original deadline passing must
	// not expire the new entry.
	c.Stage("second", "second deleted")
	time.Sleep(200 * time.Millisecond)
	assert.True(t, c.Pending())

	ev := waitEvent(t, c)
	assert.Equal(t, EventExpired, ev.Kind)
	assert.Equal(t, "second deleted", ev.Action)
}

func TestClearDismissesSilently(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Stage("rice-snapshot", "Rice deleted")
	c.Clear()

	assert.False(t, c.Pending())
	assertNoEvent(t, c)

	// Clearing again is harmless.
	c.Clear()
}

func TestRemainingIsClipped(t *testing.T) {
	c := New[string](time.Hour)
	defer c.Close()

	at := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	c.now = func() time.Time { return at }

	assert.Equal(t, time.Duration(0), c.Remaining())

	c.Stage("rice-snapshot", "Rice deleted")
	assert.Equal(t, time.Hour, c.Remaining())

	at = at.Add(20 * time.Minute)
	assert.Equal(t, 40*time.Minute, c.Remaining())

	// A clock running past the deadline reports zero, never negative.
	at = at.Add(2 * time.Hour)
	assert.Equal(t, time.Duration(0), c.Remaining())

	// A clock stepping backward reports at most the full timeout.
	at = at.Add(-5 * time.Hour)
	assert.Equal(t, time.Hour, c.Remaining())
}

func TestCloseStopsCountdown(t *testing.T) {
	c := New[string](50 * time.Millisecond)

	c.Stage("rice-snapshot", "Rice deleted")
	c.Close()
	c.Close()

	time.Sleep(100 * time.Millisecond)
	assertNoEvent(t, c)
	assert.False(t, c.Pending())
}

func TestNonPositiveTimeoutFallsBack(t *testing.T) {
	assert.Equal(t, DefaultTimeout, New[int](0).timeout)
	assert.Equal(t, DefaultTimeout, New[int](-time.Second).timeout)
	assert.Equal(t, time.Second, New[int](time.Second).timeout)
}
