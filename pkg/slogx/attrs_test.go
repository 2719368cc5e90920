package slogx

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestError(t *testing.T) {
	attr := Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
}

func TestStringer(t *testing.T) {
	attr := Stringer("channel", stringer("12345"))
	assert.Equal(t, "channel", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "12345", attr.Value.String())
}

func TestByteString(t *testing.T) {
	attr := ByteString("frame", []byte(`{"type":"interaction"}`))
	assert.Equal(t, `{"type":"interaction"}`, attr.Value.String())
}
