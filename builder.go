package pica

import (
	"context"
	"sync"
	"time"

	"github.com/pica-chat/pica/events"
)

// Registry is the dispatcher-side handle a builder registers its gate with.
// The registry owns the active set: it must call Offer on every registered
// gate for each incoming interaction and drop a gate as soon as Offer
// returns false.
type Registry interface {
	Register(*Gate)
}

// Builder stages the configuration for one subscription. Setters chain and
// may be called in any order; nothing touches the registry until the builder
// is driven through Stream or Collect.
//
// A builder resolves at most once. The first drive builds the Gate/Collector
// pair and registers the gate; later drives reuse the same collector.
type Builder struct {
	registry Registry
	opts     filterOptions
	timeout  time.Duration

	once      sync.Once
	collector *Collector
}

// NewBuilder stages a subscription against the given registry.
func NewBuilder(registry Registry) *Builder {
	return &Builder{registry: registry}
}

// ChannelID requires interactions to occur in the given channel.
func (b *Builder) ChannelID(id events.Snowflake) *Builder {
	b.opts.channelID = &id
	return b
}

// GuildID requires interactions to occur in the given guild.
func (b *Builder) GuildID(id events.Snowflake) *Builder {
	b.opts.guildID = &id
	return b
}

// AuthorID requires interactions to be triggered by the given user.
func (b *Builder) AuthorID(id events.Snowflake) *Builder {
	b.opts.authorID = &id
	return b
}

// MessageID requires interactions to occur on the given message.
func (b *Builder) MessageID(id events.Snowflake) *Builder {
	b.opts.messageID = &id
	return b
}

// Filter sets the caller predicate. It is the last check an interaction must
// pass to count as matched, and it is only invoked once every identity
// constraint already holds.
func (b *Builder) Filter(p Predicate) *Builder {
	b.opts.predicate = p
	return b
}

// FilterFunc is Filter with a plain function.
func (b *Builder) FilterFunc(fn func(*events.Interaction) bool) *Builder {
	b.opts.predicate = PredicateFunc(fn)
	return b
}

// ReceivedLimit bounds how many interactions the gate will evaluate in
// total, matching or not.
func (b *Builder) ReceivedLimit(n uint32) *Builder {
	b.opts.receivedLimit = &n
	return b
}

// MatchedLimit bounds how many interactions can be collected.
func (b *Builder) MatchedLimit(n uint32) *Builder {
	b.opts.matchedLimit = &n
	return b
}

// Timeout bounds how long the collector will receive interactions. The
// countdown starts when the builder resolves.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// Stream resolves the subscription in multi-event mode and returns its
// collector. The first call freezes the constraint set, builds the
// Gate/Collector pair and registers the gate; every later call returns the
// same collector without registering again.
func (b *Builder) Stream() *Collector {
	b.once.Do(func() {
		gate := newGate(b.opts)
		b.collector = newCollector(gate.q, b.timeout)
		b.registry.Register(gate)
	})
	return b.collector
}

// Collect resolves the subscription in single-event mode: it waits for the
// first matching interaction and stops collecting. ok is false when the
// sequence ended first, through timeout, cancellation or teardown.
func (b *Builder) Collect(ctx context.Context) (*events.Interaction, bool) {
	c := b.Stream()
	v, ok := c.Next(ctx)
	c.Stop()
	return v, ok
}
