package pica

import (
	"sync"

	"github.com/pica-chat/pica/pkg/stdx"
)

// queue is the single-producer single-consumer unbounded buffer linking a
// Gate to its Collector. Pushing never blocks. Closing is idempotent, stops
// further pushes, and wakes a blocked consumer; items already buffered stay
// readable until drained unless the close discards them.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	wake chan struct{} // cap 1, pulsed on push
	done chan struct{} // closed together with the queue
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// push appends an item, reporting false once the queue is closed.
func (q *queue[T]) push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// tryPop returns the next buffered item. dead reports that the queue is
// closed and fully drained, the terminal condition for the consumer.
func (q *queue[T]) tryPop() (v T, ok bool, dead bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) > 0 {
		v = q.items[0]
		q.items[0] = stdx.Zero[T]() // release the reference for the GC
		q.items = q.items[1:]
		return v, true, false
	}
	return v, false, q.closed
}

// close stops further pushes. discard additionally drops the backlog, which
// only the timeout path is allowed to do.
func (q *queue[T]) close(discard bool) {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.done)
	}
	if discard {
		q.items = nil
	}
	q.mu.Unlock()
}

func (q *queue[T]) isClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
