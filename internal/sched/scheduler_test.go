package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := New()
	calls := 0
	h := s.After(time.Second, func() { calls++ })

	assert.Equal(t, 0, s.Advance(999*time.Millisecond))
	assert.Equal(t, 0, calls)
	assert.True(t, s.Pending(h))

	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.Equal(t, 1, calls)
	assert.False(t, s.Pending(h))

	s.Advance(10 * time.Second)
	assert.Equal(t, 1, calls, "one-shot timer must not fire twice")
}

func TestEveryRepeatsAcrossLargeAdvance(t *testing.T) {
	s := New()
	var at []time.Duration
	s.Every(time.Second, func() { at = append(at, s.Now()) })

	fired := s.Advance(3500 * time.Millisecond)

	require.Equal(t, 3, fired)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, at)
	assert.Equal(t, 3500*time.Millisecond, s.Now())
}

func TestEveryPanicsOnNonPositiveInterval(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Every(0, func() {}) })
}

func TestCancelStopsTimer(t *testing.T) {
	s := New()
	calls := 0
	h := s.Every(time.Second, func() { calls++ })

	s.Advance(time.Second)
	require.Equal(t, 1, calls)

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h), "second cancel reports nothing pending")
	assert.False(t, s.Cancel(0), "zero handle is never pending")

	s.Advance(5 * time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Len())
}

func TestCallbackCanCancelItself(t *testing.T) {
	s := New()
	calls := 0
	var h Handle
	h = s.Every(time.Second, func() {
		calls++
		if calls == 2 {
			s.Cancel(h)
		}
	})

	s.Advance(10 * time.Second)
	assert.Equal(t, 2, calls)
	assert.False(t, s.Pending(h))
}

func TestCallbackCanCancelSiblingDueSameInstant(t *testing.T) {
	s := New()
	var order []string
	var second Handle
	s.After(time.Second, func() {
		order = append(order, "first")
		s.Cancel(second)
	})
	second = s.After(time.Second, func() { order = append(order, "second") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"first"}, order)
}

func TestTiesFireInSchedulingOrder(t *testing.T) {
	s := New()
	var order []int
	for i := 0; i < 5; i++ {
		s.After(time.Second, func() { order = append(order, i) })
	}

	s.Advance(time.Second)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestCallbackSchedulingWithinWindowFires(t *testing.T) {
	s := New()
	var order []string
	s.After(time.Second, func() {
		order = append(order, "outer")
		s.After(500*time.Millisecond, func() { order = append(order, "inner") })
	})

	s.Advance(2 * time.Second)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestAdvanceToNeverMovesBackwards(t *testing.T) {
	s := New()
	s.Advance(5 * time.Second)
	s.AdvanceTo(2 * time.Second)
	assert.Equal(t, 5*time.Second, s.Now())
}

func TestZeroDelayFiresOnNextAdvance(t *testing.T) {
	s := New()
	fired := false
	s.After(-time.Second, func() { fired = true })

	assert.False(t, fired)
	s.Advance(0)
	assert.True(t, fired)
}
