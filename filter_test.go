package pica

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pica-chat/pica/events"
)

func snowflake(v uint64) *events.Snowflake {
	s := events.Snowflake(v)
	return &s
}

func limit(v uint32) *uint32 {
	return &v
}

func TestFilterMatches(t *testing.T) {
	ev := &events.Interaction{
		ID:        1,
		Kind:      events.KindComponent,
		GuildID:   10,
		ChannelID: 20,
		AuthorID:  30,
		MessageID: 40,
	}

	tests := []struct {
		name string
		opts filterOptions
		want bool
	}{
		{"no constraints", filterOptions{}, true},
		{"all identity constraints match", filterOptions{
			guildID: snowflake(10), channelID: snowflake(20), authorID: snowflake(30), messageID: snowflake(40),
		}, true},
		{"guild mismatch", filterOptions{guildID: snowflake(11)}, false},
		{"channel mismatch", filterOptions{channelID: snowflake(21)}, false},
		{"author mismatch", filterOptions{authorID: snowflake(31)}, false},
		{"message mismatch", filterOptions{messageID: snowflake(41)}, false},
		{"predicate accepts", filterOptions{
			predicate: PredicateFunc(func(i *events.Interaction) bool { return i.Kind == events.KindComponent }),
		}, true},
		{"predicate rejects", filterOptions{
			predicate: PredicateFunc(func(*events.Interaction) bool { return false }),
		}, false},
		{"identity mismatch beats predicate", filterOptions{
			authorID:  snowflake(31),
			predicate: PredicateFunc(func(*events.Interaction) bool { return true }),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.matches(ev))
		})
	}
}

func TestFilterPredicateOnlySeesIdentityMatches(t *testing.T) {
	var seen []events.Snowflake
	opts := filterOptions{
		authorID: snowflake(42),
		predicate: PredicateFunc(func(i *events.Interaction) bool {
			seen = append(seen, i.AuthorID)
			return true
		}),
	}

	opts.matches(&events.Interaction{AuthorID: 7})
	opts.matches(&events.Interaction{AuthorID: 42})
	opts.matches(&events.Interaction{AuthorID: 9})

	assert.Equal(t, []events.Snowflake{42}, seen, "predicate must never see non-matching interactions")
}
