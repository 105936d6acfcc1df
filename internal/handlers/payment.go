package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dncarrero/videoclub-bot/internal/events"
	"github.com/dncarrero/videoclub-bot/internal/messages"
	"github.com/dncarrero/videoclub-bot/internal/metrics"
)

func (h *Handlers) sendPremiumInvoice(ctx context.Context, b *bot.Bot, chatID int64) bool {
	currency := "XTR"
	if h.cfg.ProviderToken != "" {
		currency = "USD"
	}
	_, err := b.SendInvoice(ctx, &bot.SendInvoiceParams{
		ChatID:         chatID,
		Title:          messages.InvoiceTitle,
		Description:    messages.InvoiceDescription,
		Payload:        h.cfg.PremiumPayload,
		ProviderToken:  h.cfg.ProviderToken,
		Currency:       currency,
		Prices:         []models.LabeledPrice{{Label: messages.InvoiceTitle, Amount: h.cfg.PremiumPriceStars}},
		StartParameter: "premium_plan",
	})
	if err != nil {
		h.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send invoice")
		return false
	}
	return true
}

func (h *Handlers) HandlePreCheckout(ctx context.Context, b *bot.Bot, update *models.Update, ev events.Event) {
	if update == nil || update.PreCheckoutQuery == nil {
		return
	}
	ok := ev.PaymentPayload == h.cfg.PremiumPayload
	_, _ = b.AnswerPreCheckoutQuery(ctx, &bot.AnswerPreCheckoutQueryParams{
		PreCheckoutQueryID: ev.PreCheckoutID,
		OK:                 ok,
		ErrorMessage: func() string {
			if ok {
				return ""
			}
			return messages.PaymentInvalid()
		}(),
	})
}

// HandleSuccessfulPayment grants 30 days of premium and wipes the user's
// daily counters, then confirms with the expiry date.
func (h *Handlers) HandleSuccessfulPayment(ctx context.Context, b *bot.Bot, ev events.Event) {
	if ev.PaymentPayload != h.cfg.PremiumPayload {
		return
	}
	expiresAt, err := h.entitlements.GrantPremium(ev.UserID, time.Duration(h.cfg.PremiumDays)*24*time.Hour)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", ev.UserID).Msg("failed to grant premium")
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    ev.ChatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}
	metrics.PaymentsTotal.Inc()
	h.log.Info().Int64("user_id", ev.UserID).Time("expires_at", expiresAt).
		Str("currency", ev.PaymentCurrency).Int("total", ev.PaymentTotal).
		Msg("premium granted")

	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    ev.ChatID,
		Text:      messages.PaymentSucceeded(expiresAt),
		ParseMode: messages.ParseModeHTML,
	})
}
