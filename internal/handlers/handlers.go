package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/dncarrero/videoclub-bot/internal/config"
	"github.com/dncarrero/videoclub-bot/internal/contextkeys"
	"github.com/dncarrero/videoclub-bot/internal/entitlement"
	"github.com/dncarrero/videoclub-bot/internal/events"
	"github.com/dncarrero/videoclub-bot/internal/messages"
	"github.com/dncarrero/videoclub-bot/internal/packages"
	"github.com/dncarrero/videoclub-bot/internal/subscription"
	"github.com/dncarrero/videoclub-bot/types"
)

type Handlers struct {
	cfg          *config.Config
	state        types.StateStore
	packages     *packages.Manager
	entitlements *entitlement.Engine
	verifier     *subscription.Verifier
	gate         *ViewGate
	log          zerolog.Logger
}

func NewHandlers(
	cfg *config.Config,
	state types.StateStore,
	pkgs *packages.Manager,
	engine *entitlement.Engine,
	verifier *subscription.Verifier,
	log zerolog.Logger,
) *Handlers {
	return &Handlers{
		cfg:          cfg,
		state:        state,
		packages:     pkgs,
		entitlements: engine,
		verifier:     verifier,
		gate: &ViewGate{
			Packages: pkgs,
			Verifier: verifier,
			Quota:    engine,
		},
		log: log,
	}
}

func (h *Handlers) MainHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	ev, ok := contextkeys.GetEvent(ctx)
	if !ok {
		ev = events.Classify(update)
	}

	switch ev.Kind {
	case events.KindCommand:
		h.HandleCommand(ctx, b, ev)
	case events.KindPhoto:
		h.HandleCoverPhoto(ctx, b, ev)
	case events.KindVideo:
		h.HandleVideo(ctx, b, ev)
	case events.KindCallback:
		h.HandleCallback(ctx, b, ev)
	case events.KindPreCheckout:
		h.HandlePreCheckout(ctx, b, update, ev)
	case events.KindPayment:
		h.HandleSuccessfulPayment(ctx, b, ev)
	case events.KindText:
		// Group chatter only feeds the known-chat set; nothing to answer.
		if !ev.IsGroup() {
			h.sendJoinPrompt(ctx, b, ev.ChatID)
		}
	default:
	}
}

func (h *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, ev events.Event) {
	switch ev.Command {
	case "/start":
		h.sendJoinPrompt(ctx, b, ev.ChatID)
	default:
		if ev.IsGroup() {
			return
		}
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    ev.ChatID,
			Text:      messages.UnknownCommand(),
			ParseMode: messages.ParseModeHTML,
		})
	}
}

func (h *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) error {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	return err
}
