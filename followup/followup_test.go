package followup

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func render(t *testing.T, f *Followup) gjson.Result {
	t.Helper()
	data, err := f.MarshalJSON()
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(data))
	return gjson.ParseBytes(data)
}

func TestFollowupAccumulatesFields(t *testing.T) {
	f := New().
		Content("hello there").
		Username("hook").
		AvatarURL("https://cdn.example/avatar.png").
		TTS(true).
		SetFlags(FlagEphemeral)

	obj := render(t, f)
	assert.Equal(t, "hello there", obj.Get("content").String())
	assert.Equal(t, "hook", obj.Get("username").String())
	assert.Equal(t, "https://cdn.example/avatar.png", obj.Get("avatar_url").String())
	assert.True(t, obj.Get("tts").Bool())
	assert.Equal(t, int64(64), obj.Get("flags").Int())
}

func TestFollowupOmitsUnsetFields(t *testing.T) {
	obj := render(t, New().Content("just text"))

	assert.False(t, obj.Get("username").Exists())
	assert.False(t, obj.Get("embeds").Exists())
	assert.False(t, obj.Get("flags").Exists())
}

func TestFollowupSettersOverwrite(t *testing.T) {
	obj := render(t, New().Content("first").Content("second"))
	assert.Equal(t, "second", obj.Get("content").String())
}

func TestFollowupEmbeds(t *testing.T) {
	one := NewEmbed().Title("one")
	two := NewEmbed().Title("two")

	obj := render(t, New().AddEmbed(one).AddEmbed(two))
	require.Equal(t, int64(2), obj.Get("embeds.#").Int(), "add appends")
	assert.Equal(t, "one", obj.Get("embeds.0.title").String())
	assert.Equal(t, "two", obj.Get("embeds.1.title").String())

	obj = render(t, New().AddEmbed(one).SetEmbeds(two))
	require.Equal(t, int64(1), obj.Get("embeds.#").Int(), "set overwrites")
	assert.Equal(t, "two", obj.Get("embeds.0.title").String())
}

func TestFollowupAllowedMentions(t *testing.T) {
	am := NewAllowedMentions().
		Parse("users").
		Users(1, 2).
		RepliedUser(false)

	obj := render(t, New().Content("ping").AllowedMentions(am))
	assert.Equal(t, "users", obj.Get("allowed_mentions.parse.0").String())
	assert.Equal(t, "1", obj.Get("allowed_mentions.users.0").String())
	assert.Equal(t, "2", obj.Get("allowed_mentions.users.1").String())
	assert.False(t, obj.Get("allowed_mentions.replied_user").Bool())
}

func TestFollowupFiles(t *testing.T) {
	f := New().
		AddFile(File{Name: "a.txt", ContentType: "text/plain", Data: []byte("a")}).
		AddFile(File{Name: "b.txt", ContentType: "text/plain", Data: []byte("b")})
	assert.Len(t, f.Files(), 2)

	f.SetFiles(File{Name: "c.txt"})
	assert.Len(t, f.Files(), 1)

	// attachments never leak into the JSON payload
	obj := render(t, f)
	assert.False(t, obj.Get("files").Exists())
	assert.False(t, obj.Get("attachments").Exists())
}

func TestEmbedBuilder(t *testing.T) {
	ts := strfmt.DateTime(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	e := NewEmbed().
		Title("report").
		Description("all good").
		URL("https://example.com").
		Color(0x00FF00).
		Timestamp(ts).
		Field("status", "ok", true).
		Field("region", "eu", false).
		Footer("pica", "")

	data, err := e.MarshalJSON()
	require.NoError(t, err)
	obj := gjson.ParseBytes(data)

	assert.Equal(t, "report", obj.Get("title").String())
	assert.Equal(t, int64(0x00FF00), obj.Get("color").Int())
	require.Equal(t, int64(2), obj.Get("fields.#").Int())
	assert.Equal(t, "status", obj.Get("fields.0.name").String())
	assert.True(t, obj.Get("fields.0.inline").Bool())
	assert.Equal(t, "pica", obj.Get("footer.text").String())
	assert.False(t, obj.Get("footer.icon_url").Exists())
}
