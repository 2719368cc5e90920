// Package dispatcher owns the set of active subscription gates and runs the
// delivery loop that feeds them.
//
// The dispatcher is the sole caller of a gate's Offer method. For every
// incoming interaction it walks the registry, offers the interaction to each
// gate, and drops a gate the moment Offer reports it is done. Delivery runs
// on a single goroutine, so gates never see concurrent offers.
//
// Raw frames reach the dispatcher through a Source. Local wires an
// in-process feed, which is what tests and examples use; NATS subscribes to
// a subject and treats each message as one frame. Malformed frames are
// logged and skipped, they never stop the loop.
//
// A caller predicate that panics takes down only its own subscription; the
// delivery pass continues with the remaining gates.
package dispatcher
