package dispatcher

import (
	"context"
	"fmt"

	"github.com/fogfish/opts"

	"github.com/pica-chat/pica/events"
)

const defaultFrameBuffer = 50

// Source feeds raw gateway frames to a dispatcher. Open returns the frame
// channel; the source closes it when the feed shuts down.
type Source interface {
	Open(ctx context.Context) (<-chan []byte, error)
}

// LocalSource is an in-process feed. Producers push interactions with Emit;
// tests and examples use it in place of a real gateway connection.
type LocalSource struct {
	buffer int
	frames chan []byte
}

// WithBuffer sets the frame channel capacity of a local source.
var WithBuffer = opts.ForName[LocalSource, int]("buffer")

// Local builds an in-process source.
func Local(options ...opts.Option[LocalSource]) (*LocalSource, error) {
	s := &LocalSource{buffer: defaultFrameBuffer}
	if err := opts.Apply(s, options); err != nil {
		return nil, err
	}
	s.frames = make(chan []byte, s.buffer)
	return s, nil
}

// Open implements Source.
func (s *LocalSource) Open(ctx context.Context) (<-chan []byte, error) {
	return s.frames, nil
}

// Emit encodes an interaction and queues it for delivery. It blocks when
// the frame buffer is full.
func (s *LocalSource) Emit(i *events.Interaction) error {
	data, err := events.ToJSON(i)
	if err != nil {
		return fmt.Errorf("encode interaction: %w", err)
	}
	s.frames <- data
	return nil
}

// EmitFrame queues a raw frame as-is. Useful for feeding captured gateway
// traffic through the dispatcher.
func (s *LocalSource) EmitFrame(data []byte) {
	s.frames <- data
}

// Close ends the feed. Emitting after Close panics, as sending on a closed
// channel does.
func (s *LocalSource) Close() {
	close(s.frames)
}
