package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/dncarrero/videoclub-bot/internal/contextkeys"
	"github.com/dncarrero/videoclub-bot/internal/events"
	"github.com/dncarrero/videoclub-bot/types"
)

type Middlewares struct {
	state types.StateStore
	log   zerolog.Logger
}

func New(state types.StateStore, log zerolog.Logger) *Middlewares {
	return &Middlewares{
		state: state,
		log:   log,
	}
}

// ClassifyMiddleware turns the raw update into a typed event and puts it in
// the context for the handlers.
func (m *Middlewares) ClassifyMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		ev := events.Classify(update)
		if ev.Kind == events.KindUnknown && ev.ChatID == 0 {
			return
		}
		next(contextkeys.WithEvent(ctx, ev), b, update)
	}
}

// TrackChatsMiddleware records every group chat the bot sees traffic from.
// These chats become broadcast targets for new packages.
func (m *Middlewares) TrackChatsMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if ev, ok := contextkeys.GetEvent(ctx); ok && ev.IsGroup() {
			added, err := m.state.AddKnownChat(ev.ChatID)
			if err != nil {
				m.log.Error().Err(err).Int64("chat_id", ev.ChatID).Msg("failed to record chat")
			} else if added {
				m.log.Info().Int64("chat_id", ev.ChatID).Msg("new broadcast chat recorded")
			}
		}
		next(ctx, b, update)
	}
}
