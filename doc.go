// Package pica implements filtered, time-bounded collection of gateway
// interaction events.
//
// A subscription pairs a producer-side Gate with a consumer-side Collector
// over one unbounded queue. The dispatcher owns the Gate and offers it every
// incoming interaction; the Gate evaluates constraints, counts, and forwards
// matches; the Collector is a lazy, single-traversal pull sequence that ends
// on timeout, limit exhaustion, an explicit Stop, or dispatcher shutdown.
//
// Subscriptions are configured through a fluent Builder. Nothing is
// registered with the dispatcher until the builder is driven for the first
// time, and registration happens at most once per builder no matter how often
// it is driven:
//
//	c := pica.NewBuilder(d).
//		ChannelID(channel).
//		AuthorID(author).
//		MatchedLimit(5).
//		Timeout(30 * time.Second).
//		Stream()
//
//	for ev := range c.Seq(ctx) {
//		// handle ev
//	}
//
// Single-event mode resolves to the first match instead of a stream:
//
//	ev, ok := pica.NewBuilder(d).
//		MessageID(prompt).
//		Timeout(time.Minute).
//		Collect(ctx)
//
// The queue between a Gate and its Collector is unbounded, so offering never
// blocks the dispatcher. A stalled consumer therefore grows memory without
// bound unless a matched limit or a timeout is set; callers are expected to
// configure at least one of the two.
package pica
