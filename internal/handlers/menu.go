package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dncarrero/videoclub-bot/internal/events"
	"github.com/dncarrero/videoclub-bot/internal/messages"
	"github.com/dncarrero/videoclub-bot/internal/utils"
)

func (h *Handlers) joinKeyboard() models.InlineKeyboardMarkup {
	buttons := make([]utils.Button, 0, len(h.cfg.RequiredChannels)+1)
	for _, ch := range h.cfg.RequiredChannels {
		buttons = append(buttons, utils.Button{
			Text: "📢 " + ch,
			URL:  "https://t.me/" + strings.TrimPrefix(ch, "@"),
		})
	}
	buttons = append(buttons, utils.Button{Text: messages.BtnVerify, CallbackData: "check_sub"})
	return utils.BuildInlineKeyboard(buttons)
}

func (h *Handlers) menuKeyboard() models.InlineKeyboardMarkup {
	return utils.BuildInlineKeyboard([]utils.Button{
		{Text: messages.BtnPlans, CallbackData: "planes"},
		{Text: messages.BtnBuy, CallbackData: "comprar"},
		{Text: messages.BtnProfile, CallbackData: "perfil"},
		{Text: messages.BtnInfo, CallbackData: "info"},
		{Text: messages.BtnHelp, CallbackData: "ayuda"},
	})
}

func (h *Handlers) backKeyboard() models.InlineKeyboardMarkup {
	return utils.BuildInlineKeyboard([]utils.Button{
		{Text: messages.BtnBack, CallbackData: "volver"},
	})
}

func (h *Handlers) upsellKeyboard() models.InlineKeyboardMarkup {
	return utils.BuildInlineKeyboard([]utils.Button{
		{Text: messages.BtnBuy, CallbackData: "comprar"},
	})
}

func (h *Handlers) sendJoinPrompt(ctx context.Context, b *bot.Bot, chatID int64) {
	kb := h.joinKeyboard()
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        messages.StartJoinPrompt(),
		ParseMode:   messages.ParseModeHTML,
		ReplyMarkup: &kb,
	})
}

// HandleCallback resolves the opaque menu tags plus the two special actions:
// "check_sub" re-runs the subscription verifier and "video_<id>" runs the
// gated delivery path.
func (h *Handlers) HandleCallback(ctx context.Context, b *bot.Bot, ev events.Event) {
	data := ev.CallbackData

	if strings.HasPrefix(data, "video_") {
		h.HandleVideoRequest(ctx, b, ev, strings.TrimPrefix(data, "video_"))
		return
	}

	text := messages.MainMenu()
	keyboard := h.menuKeyboard()

	switch data {
	case "check_sub":
		ok, missing := h.verifier.IsSubscribedToAll(ctx, ev.UserID)
		if !ok {
			text = messages.NotSubscribed(missing)
			keyboard = h.joinKeyboard()
		}
	case "planes":
		text = messages.Plans(h.cfg.PremiumPriceStars, h.entitlements.FreeLimit())
		keyboard = h.backKeyboard()
	case "comprar":
		if h.entitlements.IsPremium(ev.UserID) {
			expiry, _ := h.entitlements.PremiumExpiry(ev.UserID)
			text = messages.AlreadyPremium(expiry)
			keyboard = h.backKeyboard()
			break
		}
		if h.sendPremiumInvoice(ctx, b, ev.ChatID) {
			_ = h.answerCallback(ctx, b, ev.CallbackID, "")
		} else {
			_ = h.answerCallback(ctx, b, ev.CallbackID, messages.PaymentNotConfigured())
		}
		return
	case "perfil":
		premium := h.entitlements.IsPremium(ev.UserID)
		expiry, _ := h.entitlements.PremiumExpiry(ev.UserID)
		text = messages.Profile(premium, expiry, h.entitlements.ViewsToday(ev.UserID), h.entitlements.FreeLimit())
		keyboard = h.backKeyboard()
	case "info":
		text = messages.Info()
		keyboard = h.backKeyboard()
	case "ayuda":
		text = messages.Help()
		keyboard = h.backKeyboard()
	case "volver":
	default:
	}

	_ = h.answerCallback(ctx, b, ev.CallbackID, "")

	if ev.MessageID != 0 {
		_, _ = b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      ev.ChatID,
			MessageID:   ev.MessageID,
			Text:        text,
			ParseMode:   messages.ParseModeHTML,
			ReplyMarkup: &keyboard,
		})
		return
	}
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      ev.ChatID,
		Text:        text,
		ParseMode:   messages.ParseModeHTML,
		ReplyMarkup: &keyboard,
	})
}
