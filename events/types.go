package events

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var interactionJSON = []byte(`{"type":"interaction"}`)

// Kind discriminates the gateway surfaces an interaction can originate from.
type Kind string

const (
	KindComponent   Kind = "component"
	KindModalSubmit Kind = "modal_submit"
	KindCommand     Kind = "command"
)

// Interaction is a single event offered by the gateway dispatcher.
//
// GuildID is zero for direct messages and MessageID is zero for interactions
// that are not attached to a message (application commands, for instance).
type Interaction struct {
	ID        Snowflake       `json:"id"`
	Kind      Kind            `json:"kind"`
	GuildID   Snowflake       `json:"guild_id,omitempty"`
	ChannelID Snowflake       `json:"channel_id"`
	AuthorID  Snowflake       `json:"author_id"`
	MessageID Snowflake       `json:"message_id,omitempty"`
	Token     string          `json:"token,omitempty"`
	Data      gjson.Result    `json:"data,omitempty"`
	Timestamp strfmt.DateTime `json:"timestamp,omitempty"`
}

// MarshalJSON implements custom JSON marshaling for Interaction
func (i Interaction) MarshalJSON() ([]byte, error) {
	result := interactionJSON

	var err error
	result, err = sjson.SetBytes(result, "id", i.ID.String())
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "kind", string(i.Kind))
	if err != nil {
		return nil, err
	}

	if !i.GuildID.IsZero() {
		result, err = sjson.SetBytes(result, "guild_id", i.GuildID.String())
		if err != nil {
			return nil, err
		}
	}

	result, err = sjson.SetBytes(result, "channel_id", i.ChannelID.String())
	if err != nil {
		return nil, err
	}

	result, err = sjson.SetBytes(result, "author_id", i.AuthorID.String())
	if err != nil {
		return nil, err
	}

	if !i.MessageID.IsZero() {
		result, err = sjson.SetBytes(result, "message_id", i.MessageID.String())
		if err != nil {
			return nil, err
		}
	}

	if i.Token != "" {
		result, err = sjson.SetBytes(result, "token", i.Token)
		if err != nil {
			return nil, err
		}
	}

	if i.Data.Exists() {
		result, err = sjson.SetRawBytes(result, "data", []byte(i.Data.Raw))
		if err != nil {
			return nil, err
		}
	}

	if !i.Timestamp.IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", i.Timestamp.String())
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Interaction
func (i *Interaction) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	msgType := gjson.GetBytes(data, "type")
	if !msgType.Exists() || msgType.String() != "interaction" {
		return fmt.Errorf("missing or invalid type, expected 'interaction'")
	}

	id := gjson.GetBytes(data, "id")
	if !id.Exists() {
		return fmt.Errorf("missing required field 'id'")
	}
	parsed, err := ParseSnowflake(id.String())
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	i.ID = parsed

	kind := gjson.GetBytes(data, "kind")
	if !kind.Exists() {
		return fmt.Errorf("missing required field 'kind'")
	}
	i.Kind = Kind(kind.String())

	channelID := gjson.GetBytes(data, "channel_id")
	if !channelID.Exists() {
		return fmt.Errorf("missing required field 'channel_id'")
	}
	if i.ChannelID, err = ParseSnowflake(channelID.String()); err != nil {
		return fmt.Errorf("invalid channel_id: %w", err)
	}

	authorID := gjson.GetBytes(data, "author_id")
	if !authorID.Exists() {
		return fmt.Errorf("missing required field 'author_id'")
	}
	if i.AuthorID, err = ParseSnowflake(authorID.String()); err != nil {
		return fmt.Errorf("invalid author_id: %w", err)
	}

	if guildID := gjson.GetBytes(data, "guild_id"); guildID.Exists() {
		if i.GuildID, err = ParseSnowflake(guildID.String()); err != nil {
			return fmt.Errorf("invalid guild_id: %w", err)
		}
	}

	if messageID := gjson.GetBytes(data, "message_id"); messageID.Exists() {
		if i.MessageID, err = ParseSnowflake(messageID.String()); err != nil {
			return fmt.Errorf("invalid message_id: %w", err)
		}
	}

	if token := gjson.GetBytes(data, "token"); token.Exists() {
		i.Token = token.String()
	}

	if payload := gjson.GetBytes(data, "data"); payload.Exists() {
		i.Data = payload
	}

	if timestamp := gjson.GetBytes(data, "timestamp"); timestamp.Exists() {
		if err := i.Timestamp.UnmarshalText([]byte(timestamp.String())); err != nil {
			return fmt.Errorf("invalid timestamp: %w", err)
		}
	}

	return nil
}

// Now returns the current time in the wire timestamp format.
func Now() strfmt.DateTime {
	return strfmt.DateTime(time.Now().UTC())
}

// ToJSON renders an interaction as a wire frame.
func ToJSON(i *Interaction) ([]byte, error) {
	return json.Marshal(i)
}

// FromJSON decodes a wire frame into an interaction.
func FromJSON(data []byte) (*Interaction, error) {
	var i Interaction
	if err := json.Unmarshal(data, &i); err != nil {
		return nil, err
	}
	return &i, nil
}
