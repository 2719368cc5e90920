package followup

import (
	"github.com/go-openapi/strfmt"
	"github.com/tidwall/sjson"

	"github.com/pica-chat/pica/events"
)

// Embed accumulates one rich embed object.
type Embed struct {
	fields []byte
	err    error
}

// NewEmbed returns an empty embed.
func NewEmbed() *Embed {
	return &Embed{fields: []byte(`{}`)}
}

func (e *Embed) set(path string, value any) *Embed {
	if e.err != nil {
		return e
	}
	e.fields, e.err = sjson.SetBytes(e.fields, path, value)
	return e
}

// Title sets the embed title.
func (e *Embed) Title(title string) *Embed {
	return e.set("title", title)
}

// Description sets the embed body text.
func (e *Embed) Description(description string) *Embed {
	return e.set("description", description)
}

// URL makes the title a link to the given URL.
func (e *Embed) URL(url string) *Embed {
	return e.set("url", url)
}

// Color sets the color of the left-hand strip, as 0xRRGGBB.
func (e *Embed) Color(color int) *Embed {
	return e.set("color", color)
}

// Timestamp sets the embed timestamp.
func (e *Embed) Timestamp(ts strfmt.DateTime) *Embed {
	return e.set("timestamp", ts.String())
}

// Field appends a name/value field.
func (e *Embed) Field(name, value string, inline bool) *Embed {
	if e.err != nil {
		return e
	}
	field, err := sjson.SetBytes([]byte(`{}`), "name", name)
	if err == nil {
		field, err = sjson.SetBytes(field, "value", value)
	}
	if err == nil {
		field, err = sjson.SetBytes(field, "inline", inline)
	}
	if err != nil {
		e.err = err
		return e
	}
	e.fields, e.err = sjson.SetRawBytes(e.fields, "fields.-1", field)
	return e
}

// Footer sets the footer text and optional icon.
func (e *Embed) Footer(text, iconURL string) *Embed {
	e.set("footer.text", text)
	if iconURL != "" {
		e.set("footer.icon_url", iconURL)
	}
	return e
}

// MarshalJSON returns the accumulated embed object.
func (e *Embed) MarshalJSON() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.fields, nil
}

// AllowedMentions accumulates the allowed-mentions object controlling which
// mentions in the content actually ping.
type AllowedMentions struct {
	fields []byte
	err    error
}

// NewAllowedMentions returns an empty allowed-mentions object.
func NewAllowedMentions() *AllowedMentions {
	return &AllowedMentions{fields: []byte(`{}`)}
}

func (a *AllowedMentions) set(path string, value any) *AllowedMentions {
	if a.err != nil {
		return a
	}
	a.fields, a.err = sjson.SetBytes(a.fields, path, value)
	return a
}

// Parse sets which mention classes are allowed: "users", "roles",
// "everyone".
func (a *AllowedMentions) Parse(classes ...string) *AllowedMentions {
	return a.set("parse", classes)
}

// Users restricts user mentions to the given identifiers.
func (a *AllowedMentions) Users(ids ...events.Snowflake) *AllowedMentions {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return a.set("users", strs)
}

// Roles restricts role mentions to the given identifiers.
func (a *AllowedMentions) Roles(ids ...events.Snowflake) *AllowedMentions {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return a.set("roles", strs)
}

// RepliedUser sets whether the author of the replied-to message is pinged.
func (a *AllowedMentions) RepliedUser(mention bool) *AllowedMentions {
	return a.set("replied_user", mention)
}

// MarshalJSON returns the accumulated object.
func (a *AllowedMentions) MarshalJSON() ([]byte, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.fields, nil
}
