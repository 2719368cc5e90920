package pica

import (
	"context"
	"iter"
	"time"

	"github.com/pica-chat/pica/events"
)

// Collector is the consumer side of a subscription: a lazy, single-traversal
// sequence of matched interactions. Once exhausted it never yields again.
//
// Next and Seq must be driven from a single goroutine; Stop may be called
// from anywhere.
type Collector struct {
	q     *queue[*events.Interaction]
	timer *time.Timer

	exhausted bool
}

func newCollector(q *queue[*events.Interaction], timeout time.Duration) *Collector {
	c := &Collector{q: q}
	if timeout > 0 {
		c.timer = time.NewTimer(timeout)
	}
	return c
}

// Next pulls the next matching interaction, blocking until one arrives, the
// timeout fires, or the subscription is torn down. ok is false once the
// sequence has ended, permanently.
//
// Cancelling ctx stops the collector; it is teardown, not an error.
func (c *Collector) Next(ctx context.Context) (*events.Interaction, bool) {
	if c.exhausted {
		return nil, false
	}

	for {
		// A fired timer wins over buffered data: the backlog is dropped,
		// not drained.
		if c.timer != nil {
			select {
			case <-c.timer.C:
				c.expire()
				return nil, false
			default:
			}
		}

		if v, ok, dead := c.q.tryPop(); ok {
			return v, true
		} else if dead {
			c.exhausted = true
			return nil, false
		}

		if !c.wait(ctx) {
			return nil, false
		}
	}
}

// wait blocks until there may be something to pop; false means the sequence
// is over.
func (c *Collector) wait(ctx context.Context) bool {
	var timeout <-chan time.Time
	if c.timer != nil {
		timeout = c.timer.C
	}

	select {
	case <-c.q.wake:
		return true
	case <-c.q.done:
		// Closed, possibly with a backlog: loop so tryPop can drain it.
		return true
	case <-timeout:
		c.expire()
		return false
	case <-ctx.Done():
		c.Stop()
		c.exhausted = true
		return false
	}
}

func (c *Collector) expire() {
	c.exhausted = true
	c.q.close(true)
}

// Stop ends collection immediately: the paired Gate's next Offer fails fast
// and the dispatcher drops the subscription. Idempotent. Interactions that
// were already queued may still be drained with Next.
//
// Prefer stopping a collector as soon as it is no longer needed; an
// abandoned collector without limits or a timeout keeps its gate registered
// forever.
func (c *Collector) Stop() {
	c.q.close(false)
	if c.timer != nil {
		c.timer.Stop()
	}
}

// Seq exposes the collector as a range-over-func sequence. The collector is
// stopped when the loop exits, normally or early.
func (c *Collector) Seq(ctx context.Context) iter.Seq[*events.Interaction] {
	return func(yield func(*events.Interaction) bool) {
		defer c.Stop()
		for {
			v, ok := c.Next(ctx)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
