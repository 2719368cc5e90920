package pica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePushPop(t *testing.T) {
	q := newQueue[int]()

	assert.True(t, q.push(1))
	assert.True(t, q.push(2))

	v, ok, dead := q.tryPop()
	require.True(t, ok)
	assert.False(t, dead)
	assert.Equal(t, 1, v)

	v, ok, _ = q.tryPop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok, dead = q.tryPop()
	assert.False(t, ok)
	assert.False(t, dead, "open and empty is not terminal")
}

func TestQueueCloseKeepsBacklog(t *testing.T) {
	q := newQueue[int]()
	q.push(1)
	q.push(2)

	q.close(false)
	assert.False(t, q.push(3), "push after close must fail")

	v, ok, _ := q.tryPop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok, _ = q.tryPop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok, dead := q.tryPop()
	assert.False(t, ok)
	assert.True(t, dead, "closed and drained is terminal")
}

func TestQueueCloseDiscard(t *testing.T) {
	q := newQueue[int]()
	q.push(1)
	q.push(2)

	q.close(true)

	_, ok, dead := q.tryPop()
	assert.False(t, ok)
	assert.True(t, dead)
}

func TestQueueCloseIdempotent(t *testing.T) {
	q := newQueue[int]()
	q.close(false)
	assert.NotPanics(t, func() { q.close(false) })
	assert.NotPanics(t, func() { q.close(true) })
	assert.True(t, q.isClosed())
}

func TestQueueWakeSignal(t *testing.T) {
	q := newQueue[int]()

	q.push(1)
	select {
	case <-q.wake:
	default:
		t.Fatal("push did not pulse the wake channel")
	}

	// done closes with the queue
	q.close(false)
	select {
	case <-q.done:
	default:
		t.Fatal("close did not release the done channel")
	}
}
