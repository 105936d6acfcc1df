package contextkeys

import (
	"context"

	"github.com/dncarrero/videoclub-bot/internal/events"
)

type eventKey struct{}

func WithEvent(ctx context.Context, ev events.Event) context.Context {
	return context.WithValue(ctx, eventKey{}, ev)
}

func GetEvent(ctx context.Context) (events.Event, bool) {
	v := ctx.Value(eventKey{})
	if v == nil {
		return events.Event{Kind: events.KindUnknown}, false
	}
	return v.(events.Event), true
}
