package slogx

import (
	"fmt"
	"log/slog"
)

// Error returns an "error" attribute carrying the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer returns an attribute rendering the value through its String
// method. Handy for snowflakes and other identifier types.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// ByteString returns an attribute for a byte slice that is known to hold
// text, such as a raw wire frame.
func ByteString(key string, value []byte) slog.Attr {
	return slog.String(key, string(value))
}
