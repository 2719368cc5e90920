package pica

import (
	"github.com/pica-chat/pica/events"
	"github.com/pica-chat/pica/pkg/uuidx"
)

// Gate is the producer side of a subscription. The dispatcher holds it in
// its registry and calls Offer for every incoming interaction; the paired
// Collector consumes whatever the Gate forwards.
//
// Offer is only ever called from the dispatcher's single delivery goroutine,
// so the counters need no synchronization.
type Gate struct {
	id   string
	opts filterOptions
	q    *queue[*events.Interaction]

	received uint32
	matched  uint32
}

func newGate(opts filterOptions) *Gate {
	return &Gate{
		id:   uuidx.NewString(),
		opts: opts,
		q:    newQueue[*events.Interaction](),
	}
}

// ID returns the registry key for this gate.
func (g *Gate) ID() string {
	return g.id
}

// Received returns how many interactions this gate has evaluated, matching
// or not.
func (g *Gate) Received() uint32 {
	return g.received
}

// Matched returns how many interactions passed the constraint set.
func (g *Gate) Matched() uint32 {
	return g.matched
}

// Offer evaluates one interaction and reports whether the dispatcher should
// keep this gate registered.
//
// A matching interaction is counted and forwarded before the limits are
// checked, so the interaction that reaches a limit is still delivered; only
// the next offer is refused. Both limits are exclusive upper bounds, and the
// received counter covers every evaluated interaction, not just rejected
// ones.
func (g *Gate) Offer(i *events.Interaction) bool {
	if g.opts.matches(i) {
		g.matched++
		if !g.q.push(i) {
			// Consumer is gone; no point counting anything further.
			return false
		}
	}
	g.received++

	if !g.withinLimits() || g.q.isClosed() {
		// The subscription is done. Closing the queue here stands in for
		// dropping the sending half: the collector drains whatever is
		// buffered and then terminates.
		g.q.close(false)
		return false
	}
	return true
}

func (g *Gate) withinLimits() bool {
	return (g.opts.receivedLimit == nil || g.received < *g.opts.receivedLimit) &&
		(g.opts.matchedLimit == nil || g.matched < *g.opts.matchedLimit)
}
