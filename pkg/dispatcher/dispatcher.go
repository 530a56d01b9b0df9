// Package dispatcher routes gateway events to registered handlers,
// constructing catalog models out of the raw payloads on the way.
package dispatcher

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync"

	"github.com/gocord/gocord/pkg/model"
	"github.com/gocord/gocord/pkg/xcontext"
)

// Any subscribes a handler to every event regardless of name.
const Any = "*"

// Handler receives the constructed model of the event. For events without
// a model kind the raw payload map is passed instead.
type Handler func(ctx context.Context, event string, data any)

// eventKinds maps gateway event names to the model kind their payload
// decodes into. Events not listed here are delivered raw.
var eventKinds = map[string]model.Kind{
	"MESSAGE_CREATE":      model.KindMessage,
	"MESSAGE_UPDATE":      model.KindMessage,
	"GUILD_CREATE":        model.KindGuild,
	"GUILD_UPDATE":        model.KindGuild,
	"CHANNEL_CREATE":      model.KindChannel,
	"CHANNEL_UPDATE":      model.KindChannel,
	"CHANNEL_DELETE":      model.KindChannel,
	"CHANNEL_PINS_UPDATE": model.KindChannelPinsUpdate,
	"GUILD_MEMBER_ADD":    model.KindMember,
	"GUILD_MEMBER_UPDATE": model.KindMember,
	"PRESENCE_UPDATE":     model.KindPresenceUpdate,
	"USER_UPDATE":         model.KindUser,
}

type Dispatcher struct {
	registry *model.Registry
	handlers *xsync.MapOf[string, []Handler]

	// Guards read-modify-write on handler slices. Lookups stay lock-free.
	registerMutex sync.Mutex
}

func New(registry *model.Registry) *Dispatcher {
	if registry == nil {
		registry = model.Default()
	}

	return &Dispatcher{
		registry: registry,
		handlers: xsync.NewMapOf[[]Handler](),
	}
}

// On subscribes a handler to an event name, or to all events with Any.
func (d *Dispatcher) On(event string, handler Handler) {
	d.registerMutex.Lock()
	defer d.registerMutex.Unlock()

	old, _ := d.handlers.Load(event)
	d.handlers.Store(event, append(old, handler))
}

// Dispatch builds the event's model and fans it out. A payload the model
// catalog rejects is delivered raw rather than dropped, so handlers always
// see the event.
func (d *Dispatcher) Dispatch(ctx context.Context, event string, payload map[string]any) {
	var data any = payload

	if kind, ok := eventKinds[event]; ok && payload != nil {
		built, err := d.registry.Build(kind, payload)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot build %s model for %s: %v", kind, event, err)
		} else {
			data = built
		}
	}

	d.fanout(ctx, event, event, data)
	d.fanout(ctx, Any, event, data)
}

func (d *Dispatcher) fanout(ctx context.Context, key, event string, data any) {
	handlers, ok := d.handlers.Load(key)
	if !ok {
		return
	}

	for _, h := range handlers {
		h(ctx, event, data)
	}
}
