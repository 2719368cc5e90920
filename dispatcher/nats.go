package dispatcher

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/pica-chat/pica/pkg/slogx"
)

// NATSSource feeds the dispatcher from a NATS subject, one message per
// frame. It lets several processes share a single gateway connection: the
// process holding the connection republishes frames, everyone else runs a
// dispatcher against the subject.
type NATSSource struct {
	conn    *nats.Conn
	subject string
	buffer  int
}

// NATS builds a source subscribed to subject on conn.
func NATS(conn *nats.Conn, subject string) *NATSSource {
	return &NATSSource{
		conn:    conn,
		subject: subject,
		buffer:  defaultFrameBuffer,
	}
}

// Open implements Source. The subscription is drained when ctx is
// cancelled; the frame channel closes once the drain completes.
func (s *NATSSource) Open(ctx context.Context) (<-chan []byte, error) {
	frames := make(chan []byte, s.buffer)

	sub, err := s.conn.Subscribe(s.subject, func(msg *nats.Msg) {
		frames <- msg.Data

		if msg.Reply != "" {
			if nerr := msg.Ack(); nerr != nil {
				slog.Error("failed to ack message", slogx.Error(nerr))
			}
		}
	})
	if err != nil {
		return nil, err
	}

	sub.SetClosedHandler(func(_ string) { close(frames) })

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			slog.Error("failed to drain subscription", slogx.Error(err))
		}
	}()

	return frames, nil
}
