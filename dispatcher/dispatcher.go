package dispatcher

import (
	"context"
	"log/slog"

	"github.com/alphadose/haxmap"
	"github.com/fogfish/opts"
	"github.com/rs/zerolog"

	"github.com/pica-chat/pica"
	"github.com/pica-chat/pica/events"
	"github.com/pica-chat/pica/pkg/slogx"
)

// Dispatcher routes incoming interactions to every registered gate. It
// implements pica.Registry.
type Dispatcher struct {
	log   zerolog.Logger
	gates *haxmap.Map[string, *pica.Gate]
}

// WithLogger sets the logger used for registry and delivery events.
var WithLogger = opts.ForName[Dispatcher, zerolog.Logger]("log")

// New builds a dispatcher with an empty registry.
func New(options ...opts.Option[Dispatcher]) (*Dispatcher, error) {
	d := &Dispatcher{
		log:   zerolog.Nop(),
		gates: haxmap.New[string, *pica.Gate](),
	}
	if err := opts.Apply(d, options); err != nil {
		return nil, err
	}
	return d, nil
}

// Register adds a gate to the active set. Called by a subscription builder
// when it resolves, exactly once per subscription.
func (d *Dispatcher) Register(g *pica.Gate) {
	d.gates.Set(g.ID(), g)
	d.log.Debug().Str("gate", g.ID()).Msg("subscription registered")
}

// Active returns how many gates are currently registered.
func (d *Dispatcher) Active() int {
	return int(d.gates.Len())
}

// Dispatch offers one interaction to every active gate, removing the gates
// that report they are done.
func (d *Dispatcher) Dispatch(ev *events.Interaction) {
	d.gates.ForEach(func(id string, g *pica.Gate) bool {
		if !d.offer(g, ev) {
			d.gates.Del(id)
			d.log.Debug().Str("gate", id).Msg("subscription deregistered")
		}
		return true
	})
}

// offer shields the delivery pass from a panicking caller predicate: the
// offending subscription is dropped, everyone else still gets the event.
func (d *Dispatcher) offer(g *pica.Gate, ev *events.Interaction) (keep bool) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Str("gate", g.ID()).Interface("panic", r).Msg("predicate panicked, dropping subscription")
			keep = false
		}
	}()
	return g.Offer(ev)
}

// Run decodes frames from src and dispatches them until ctx is cancelled or
// the source closes its feed.
func (d *Dispatcher) Run(ctx context.Context, src Source) error {
	frames, err := src.Open(ctx)
	if err != nil {
		return err
	}

	d.log.Info().Msg("dispatcher running")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-frames:
			if !ok {
				d.log.Info().Msg("source closed, dispatcher stopping")
				return nil
			}
			ev, err := events.FromJSON(frame)
			if err != nil {
				slog.Error("failed to unmarshal interaction", slogx.Error(err), slogx.ByteString("frame", frame))
				continue
			}
			d.Dispatch(ev)
		}
	}
}
