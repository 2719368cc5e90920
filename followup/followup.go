package followup

import (
	"github.com/tidwall/sjson"
)

// Flags is the message flag bitfield of the outgoing payload.
type Flags uint64

const (
	// FlagSuppressEmbeds hides all embeds on the message.
	FlagSuppressEmbeds Flags = 1 << 2
	// FlagEphemeral makes the message visible only to the invoking user.
	FlagEphemeral Flags = 1 << 6
)

// File is an attachment uploaded alongside the payload. Attachments travel
// out of band in the multipart request, not inside the JSON object.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Followup accumulates the payload for an interaction followup message.
type Followup struct {
	fields []byte
	files  []File
	err    error
}

// New returns an empty followup payload.
func New() *Followup {
	return &Followup{fields: []byte(`{}`)}
}

func (f *Followup) set(path string, value any) *Followup {
	if f.err != nil {
		return f
	}
	f.fields, f.err = sjson.SetBytes(f.fields, path, value)
	return f
}

func (f *Followup) setRaw(path string, raw []byte) *Followup {
	if f.err != nil {
		return f
	}
	f.fields, f.err = sjson.SetRawBytes(f.fields, path, raw)
	return f
}

// Content sets the message text. Contents must stay under 2000 unicode code
// points.
func (f *Followup) Content(content string) *Followup {
	return f.set("content", content)
}

// Username overrides the default username of the webhook.
func (f *Followup) Username(username string) *Followup {
	return f.set("username", username)
}

// AvatarURL overrides the default avatar of the webhook.
func (f *Followup) AvatarURL(url string) *Followup {
	return f.set("avatar_url", url)
}

// TTS sets whether the message is text-to-speech.
func (f *Followup) TTS(tts bool) *Followup {
	return f.set("tts", tts)
}

// SetFlags sets the flags for the message.
func (f *Followup) SetFlags(flags Flags) *Followup {
	return f.set("flags", uint64(flags))
}

// AddEmbed appends an embed to the message.
func (f *Followup) AddEmbed(e *Embed) *Followup {
	raw, err := e.MarshalJSON()
	if err != nil {
		f.err = err
		return f
	}
	return f.setRaw("embeds.-1", raw)
}

// SetEmbeds replaces the embed list. Use AddEmbed to append instead.
func (f *Followup) SetEmbeds(embeds ...*Embed) *Followup {
	f.setRaw("embeds", []byte(`[]`))
	for _, e := range embeds {
		f.AddEmbed(e)
	}
	return f
}

// AllowedMentions sets the allowed mentions of the message.
func (f *Followup) AllowedMentions(am *AllowedMentions) *Followup {
	raw, err := am.MarshalJSON()
	if err != nil {
		f.err = err
		return f
	}
	return f.setRaw("allowed_mentions", raw)
}

// SetComponentsRaw sets the component rows from pre-built JSON.
func (f *Followup) SetComponentsRaw(raw []byte) *Followup {
	return f.setRaw("components", raw)
}

// AddFile appends an attachment.
func (f *Followup) AddFile(file File) *Followup {
	f.files = append(f.files, file)
	return f
}

// SetFiles replaces the attachment list. Use AddFile to append instead.
func (f *Followup) SetFiles(files ...File) *Followup {
	f.files = files
	return f
}

// Files returns the attachments accumulated so far.
func (f *Followup) Files() []File {
	return f.files
}

// MarshalJSON returns the accumulated payload object.
func (f *Followup) MarshalJSON() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.fields, nil
}
