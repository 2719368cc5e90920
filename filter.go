package pica

import "github.com/pica-chat/pica/events"

// Predicate is the caller-supplied acceptance test for an interaction. It
// runs on the dispatcher's delivery goroutine, so implementations must be
// safe to call concurrently with other subscriptions' predicates and must not
// take locks the dispatcher depends on.
type Predicate interface {
	Matches(*events.Interaction) bool
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(*events.Interaction) bool

func (f PredicateFunc) Matches(i *events.Interaction) bool {
	return f(i)
}

// filterOptions is the constraint set for one subscription. The builder
// mutates it during configuration; the gate takes a copy at resolution time
// and never writes to it.
type filterOptions struct {
	receivedLimit *uint32
	matchedLimit  *uint32
	predicate     Predicate

	channelID *events.Snowflake
	guildID   *events.Snowflake
	authorID  *events.Snowflake
	messageID *events.Snowflake
}

// matches applies every configured constraint; an unset constraint holds
// vacuously. The identity checks short-circuit, so the predicate only ever
// sees interactions whose identity constraints already hold.
func (f *filterOptions) matches(i *events.Interaction) bool {
	return (f.guildID == nil || *f.guildID == i.GuildID) &&
		(f.messageID == nil || *f.messageID == i.MessageID) &&
		(f.channelID == nil || *f.channelID == i.ChannelID) &&
		(f.authorID == nil || *f.authorID == i.AuthorID) &&
		(f.predicate == nil || f.predicate.Matches(i))
}
